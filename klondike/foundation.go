package klondike

import (
	"fmt"

	"github.com/dekarrin/playingsim/deck"
)

// Foundation is one of the four piles the game is won by filling: a
// strictly increasing same-suit run from Ace to King. Cards are stored
// bottom-first, so the last element is the top.
type Foundation struct {
	suit  deck.Suit
	cards []deck.Card
}

// NewFoundation creates an empty foundation for the given suit
func NewFoundation(suit deck.Suit) *Foundation {
	return &Foundation{suit: suit}
}

// Suit returns the suit this foundation accepts
func (f *Foundation) Suit() deck.Suit {
	return f.suit
}

// Add places a card on the foundation. The card must match the foundation's
// suit and be exactly one rank above the current top, starting at Ace.
func (f *Foundation) Add(card deck.Card) error {
	need, ok := f.Needs()
	if !ok {
		return fmt.Errorf("%w: %s foundation is complete", ErrIllegalPlacement, f.suit)
	}
	if card != need {
		return fmt.Errorf("%w: %s foundation needs %s, not %s", ErrIllegalPlacement, f.suit, need, card)
	}
	f.cards = append(f.cards, card)
	return nil
}

// Take removes and returns the foundation's top card
func (f *Foundation) Take() (deck.Card, error) {
	if len(f.cards) == 0 {
		return deck.Card{}, fmt.Errorf("%w: %s foundation is empty", ErrInsufficientCards, f.suit)
	}
	top := f.cards[len(f.cards)-1]
	f.cards = f.cards[:len(f.cards)-1]
	return top, nil
}

// Top returns the foundation's top card without removing it
func (f *Foundation) Top() (deck.Card, bool) {
	if len(f.cards) == 0 {
		return deck.Card{}, false
	}
	return f.cards[len(f.cards)-1], true
}

// Needs returns the single next card the foundation will accept, or false
// if it is complete
func (f *Foundation) Needs() (deck.Card, bool) {
	if len(f.cards) == int(deck.King) {
		return deck.Card{}, false
	}
	return deck.NewCard(deck.Rank(len(f.cards))+deck.Ace, f.suit), true
}

// Complete reports whether the foundation holds all thirteen ranks
func (f *Foundation) Complete() bool {
	_, ok := f.Needs()
	return !ok
}

// Len returns the number of cards on the foundation
func (f *Foundation) Len() int {
	return len(f.cards)
}

// Cards returns a copy of the foundation's cards, bottom-first
func (f *Foundation) Cards() []deck.Card {
	cards := make([]deck.Card, len(f.cards))
	copy(cards, f.cards)
	return cards
}

// Clone returns a deep copy of the foundation
func (f *Foundation) Clone() *Foundation {
	return &Foundation{suit: f.suit, cards: append([]deck.Card(nil), f.cards...)}
}
