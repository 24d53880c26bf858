package klondike

import (
	"fmt"

	"github.com/dekarrin/playingsim/deck"
)

// Pile is one tableau pile: a face-down stack with a face-up run built on
// top of it. Both sections are ordered with index 0 as the card the player
// interacts with next — the topmost playable card in shown, the next card
// to be turned over in hidden.
type Pile struct {
	shown  []deck.Card
	hidden []deck.Card
}

// NewPile creates a pile from cards listed top-first. The first card is
// turned face-up immediately; the rest stay hidden.
func NewPile(cards []deck.Card) *Pile {
	p := &Pile{}
	if len(cards) > 0 {
		p.shown = []deck.Card{cards[0]}
		p.hidden = append(p.hidden, cards[1:]...)
	}
	return p
}

// Take removes the top count cards from the pile's shown section and
// returns them in top-to-bottom order. If removing them empties the shown
// section, the next hidden card is automatically turned face-up.
func (p *Pile) Take(count int) ([]deck.Card, error) {
	if count < 1 || count > len(p.shown) {
		return nil, fmt.Errorf("%w: cannot take %d cards; %d cards are revealed", ErrInsufficientCards, count, len(p.shown))
	}

	taken := make([]deck.Card, count)
	copy(taken, p.shown[:count])
	p.shown = p.shown[count:]
	p.reveal()

	return taken, nil
}

// reveal restores the pile invariant by turning over the next hidden card
// when the shown section is empty. It is an invariant-restoring step, not
// error recovery.
func (p *Pile) reveal() {
	if len(p.shown) == 0 && len(p.hidden) > 0 {
		p.shown = []deck.Card{p.hidden[0]}
		p.hidden = p.hidden[1:]
	}
}

// Give places a run of cards, listed top-first, on top of the pile. The run
// must alternate in color and descend in rank card by card, and its bottom
// card must continue the pile's run — or be a King if the pile is empty.
func (p *Pile) Give(cards []deck.Card) error {
	if len(cards) == 0 {
		return fmt.Errorf("%w: no cards given", ErrInvalidStack)
	}

	for i := 0; i < len(cards)-1; i++ {
		upper, lower := cards[i], cards[i+1]
		if upper.Color() == lower.Color() || upper.Rank != lower.Rank-1 {
			return fmt.Errorf("%w: %s cannot sit on %s", ErrInvalidStack, upper, lower)
		}
	}

	bottom := cards[len(cards)-1]
	if top, ok := p.Top(); ok {
		if bottom.Color() == top.Color() || bottom.Rank != top.Rank-1 {
			return fmt.Errorf("%w: %s cannot sit on %s", ErrIllegalPlacement, bottom, top)
		}
	} else if bottom.Rank != deck.King {
		return fmt.Errorf("%w: only a King may start an empty pile, not %s", ErrIllegalPlacement, bottom)
	}

	updated := make([]deck.Card, 0, len(cards)+len(p.shown))
	updated = append(updated, cards...)
	updated = append(updated, p.shown...)
	p.shown = updated
	return nil
}

// Top returns the pile's top card. If the shown section is empty but hidden
// cards remain, the next hidden card is turned over first.
func (p *Pile) Top() (deck.Card, bool) {
	p.reveal()
	if len(p.shown) == 0 {
		return deck.Card{}, false
	}
	return p.shown[0], true
}

// Needs returns every card that could legally be placed on top of the pile
// right now: all four Kings for an empty pile, nothing for an Ace, and
// otherwise the two opposite-color cards of one rank less.
func (p *Pile) Needs() []deck.Card {
	top, ok := p.Top()
	if !ok {
		kings := make([]deck.Card, 0, 4)
		for _, s := range deck.Suits {
			kings = append(kings, deck.NewCard(deck.King, s))
		}
		return kings
	}

	if top.Rank == deck.Ace {
		return []deck.Card{}
	}

	needs := make([]deck.Card, 0, 2)
	for _, s := range deck.Suits {
		if s.Color() != top.Color() {
			needs = append(needs, deck.NewCard(top.Rank-1, s))
		}
	}
	return needs
}

// NeedsCard reports whether the given card could legally be placed on top
// of the pile right now
func (p *Pile) NeedsCard(card deck.Card) bool {
	for _, c := range p.Needs() {
		if c == card {
			return true
		}
	}
	return false
}

// Empty reports whether the pile holds no cards at all
func (p *Pile) Empty() bool {
	return len(p.shown) == 0 && len(p.hidden) == 0
}

// Len returns the total number of cards in the pile
func (p *Pile) Len() int {
	return len(p.shown) + len(p.hidden)
}

// Shown returns a copy of the face-up run, top-first
func (p *Pile) Shown() []deck.Card {
	shown := make([]deck.Card, len(p.shown))
	copy(shown, p.shown)
	return shown
}

// HiddenCount returns the number of face-down cards
func (p *Pile) HiddenCount() int {
	return len(p.hidden)
}

// Clone returns a deep copy of the pile
func (p *Pile) Clone() *Pile {
	return &Pile{
		shown:  append([]deck.Card(nil), p.shown...),
		hidden: append([]deck.Card(nil), p.hidden...),
	}
}
