package klondike

import (
	"strings"
	"testing"

	"github.com/dekarrin/playingsim/deck"
)

// cards parses a space-separated list of card codes, e.g. "AC 2C 3C"
func cards(t *testing.T, codes string) []deck.Card {
	t.Helper()

	if strings.TrimSpace(codes) == "" {
		return []deck.Card{}
	}
	parsed, err := deck.ParseAll(strings.Fields(codes)...)
	if err != nil {
		t.Fatalf("bad card codes %q: %v", codes, err)
	}
	return parsed
}

// pileOf builds a tableau pile with the given shown and hidden sections,
// both listed top-first
func pileOf(t *testing.T, shown, hidden string) *Pile {
	t.Helper()
	return &Pile{shown: cards(t, shown), hidden: cards(t, hidden)}
}

// foundationTo builds a foundation holding Ace up to and including the
// given rank; rank 0 leaves it empty
func foundationTo(t *testing.T, suit deck.Suit, rank deck.Rank) *Foundation {
	t.Helper()

	f := NewFoundation(suit)
	for r := deck.Ace; r <= rank; r++ {
		if err := f.Add(deck.NewCard(r, suit)); err != nil {
			t.Fatalf("building %s foundation to %s: %v", suit, rank, err)
		}
	}
	return f
}

// stateOf builds a State from parts. Foundations not supplied are empty.
func stateOf(t *testing.T, tableau []*Pile, foundations map[deck.Suit]*Foundation, stock, waste string, currentPass, passLimit, drawCount int) State {
	t.Helper()

	if foundations == nil {
		foundations = map[deck.Suit]*Foundation{}
	}
	for _, suit := range deck.Suits {
		if _, ok := foundations[suit]; !ok {
			foundations[suit] = NewFoundation(suit)
		}
	}

	return State{
		Tableau:     tableau,
		Foundations: foundations,
		Stock:       deck.Deck(cards(t, stock)),
		Waste:       deck.Deck(cards(t, waste)),
		CurrentPass: currentPass,
		PassLimit:   passLimit,
		DrawCount:   drawCount,
	}
}
