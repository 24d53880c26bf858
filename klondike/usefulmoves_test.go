package klondike

import (
	"testing"

	"github.com/dekarrin/playingsim/deck"
	"github.com/stretchr/testify/assert"
)

func TestHasUsefulMovesIndeterminate(t *testing.T) {
	t.Run("before the stock has been cycled", func(t *testing.T) {
		s := stateOf(t, []*Pile{pileOf(t, "9S", "2H")}, nil, "4C", "7D", 1, 0, 1)
		assert.Equal(t, Indeterminate, s.HasUsefulMoves())
	})

	t.Run("single-pass games never gain the information", func(t *testing.T) {
		// with a pass limit of 1 no second pass ever happens, so the
		// engine must not claim dead or alive
		s := stateOf(t, []*Pile{pileOf(t, "9S", "2H")}, nil, "", "7D", 1, 1, 1)
		assert.Equal(t, Indeterminate, s.HasUsefulMoves())
	})
}

func TestHasUsefulMovesNoMovesAtAll(t *testing.T) {
	s := stateOf(t,
		[]*Pile{
			pileOf(t, "9S", "2H"),
			pileOf(t, "9D", "3C"),
		},
		nil,
		"", "", 2, 2, 1)

	assert.Equal(t, No, s.HasUsefulMoves())
}

func TestHasUsefulMovesDead(t *testing.T) {
	// a stack move exists (JS onto QD) but applying it helps nothing: the
	// revealed 2H is unplayable, no slot opens, no destination opens for a
	// reachable card, and the only accessible card (9C) fits nowhere
	s := stateOf(t,
		[]*Pile{
			pileOf(t, "JS", "2H"),
			pileOf(t, "QD", "3C"),
		},
		nil,
		"", "9C", 2, 2, 1)

	assert.Equal(t, No, s.HasUsefulMoves())
}

func TestHasUsefulMovesAlive(t *testing.T) {
	t.Run("card ready for a foundation", func(t *testing.T) {
		s := stateOf(t,
			[]*Pile{pileOf(t, "9C", "4D")},
			map[deck.Suit]*Foundation{
				deck.Clubs: foundationTo(t, deck.Clubs, deck.Eight),
			},
			"", "2H", 2, 2, 1)

		assert.Equal(t, Yes, s.HasUsefulMoves())
	})

	t.Run("accessible waste card is playable", func(t *testing.T) {
		s := stateOf(t,
			[]*Pile{pileOf(t, "8S", "3D")},
			nil,
			"", "7D", 2, 2, 1)

		assert.Equal(t, Yes, s.HasUsefulMoves())
	})

	t.Run("stack move reveals an immediately playable card", func(t *testing.T) {
		s := stateOf(t,
			[]*Pile{
				pileOf(t, "5H", "AD"),
				pileOf(t, "6S", "4C"),
			},
			nil,
			"", "", 2, 2, 1)

		assert.Equal(t, Yes, s.HasUsefulMoves())
	})

	t.Run("emptying a slot while a king is in reach", func(t *testing.T) {
		s := stateOf(t,
			[]*Pile{
				pileOf(t, "QD", ""),
				pileOf(t, "KS", "2C"),
			},
			nil,
			"", "KH", 2, 2, 1)

		assert.Equal(t, Yes, s.HasUsefulMoves())
	})

	t.Run("foundation card returns to open a destination", func(t *testing.T) {
		// pulling the 7H back onto the 8S lets the reachable 6S land on it
		s := stateOf(t,
			[]*Pile{
				pileOf(t, "8S", "2D"),
				pileOf(t, "10D", "2C"),
			},
			map[deck.Suit]*Foundation{
				deck.Hearts: foundationTo(t, deck.Hearts, deck.Seven),
			},
			"", "6S", 2, 2, 1)

		assert.Equal(t, Yes, s.HasUsefulMoves())
	})
}
