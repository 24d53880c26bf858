package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoCards is returned when a draw asks for more cards than the deck holds
var ErrNoCards = errors.New("not enough cards in the deck")

// Deck represents an ordered sequence of cards. Index 0 is the top of the
// deck: the next card drawn, or the most recently played card.
type Deck []Card

// New creates a standard 52-card deck with each rank/suit combination
// appearing exactly once, in rank order then suit order.
func New() Deck {
	cards := make(Deck, 0, 52)
	for rank := Ace; rank <= King; rank++ {
		for _, suit := range Suits {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		randomNumber := rand.Intn(i + 1)
		actualDeck[i], actualDeck[randomNumber] = actualDeck[randomNumber], actualDeck[i]
	}
}

// Draw removes and returns the top card of the deck
func (d *Deck) Draw() (Card, error) {
	if len(*d) == 0 {
		return Card{}, ErrNoCards
	}
	c := (*d)[0]
	*d = (*d)[1:]
	return c, nil
}

// DrawN removes and returns the top n cards of the deck, in the order they
// would be drawn
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 || n > len(*d) {
		return nil, ErrNoCards
	}
	drawn := make([]Card, n)
	copy(drawn, (*d)[:n])
	*d = (*d)[n:]
	return drawn, nil
}

// DrawUpTo removes and returns up to n cards from the top of the deck,
// fewer if the deck runs out
func (d *Deck) DrawUpTo(n int) []Card {
	if n > len(*d) {
		n = len(*d)
	}
	drawn, _ := d.DrawN(n)
	return drawn
}

// Top returns the top card of the deck without removing it
func (d Deck) Top() (Card, bool) {
	if len(d) == 0 {
		return Card{}, false
	}
	return d[0], true
}

// TopN returns up to the top n cards of the deck without removing them, in
// the order they would be drawn
func (d Deck) TopN(n int) []Card {
	if n > len(d) {
		n = len(d)
	}
	top := make([]Card, n)
	copy(top, d[:n])
	return top
}

// Insert inserts cards at the given index, clamped to the ends of the deck.
// Insert at 0 places cards on top.
func (d *Deck) Insert(index int, cards ...Card) {
	if index < 0 {
		index = 0
	}
	if index > len(*d) {
		index = len(*d)
	}
	updated := make(Deck, 0, len(*d)+len(cards))
	updated = append(updated, (*d)[:index]...)
	updated = append(updated, cards...)
	updated = append(updated, (*d)[index:]...)
	*d = updated
}

// Reverse reverses the order of the cards in the deck, in place
func (d Deck) Reverse() {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}

// Clone returns a deep copy of the deck. The copy shares no storage with
// the original.
func (d Deck) Clone() Deck {
	return append(Deck(nil), d...)
}

// Empty reports whether the deck is out of cards
func (d Deck) Empty() bool {
	return len(d) == 0
}

// Contains reports whether the deck holds the given card
func (d Deck) Contains(card Card) bool {
	for _, c := range d {
		if c == card {
			return true
		}
	}
	return false
}

// Codes returns the short code of every card in deck order
func (d Deck) Codes() []string {
	codes := make([]string, len(d))
	for i, c := range d {
		codes[i] = c.String()
	}
	return codes
}

// ParseAll converts a list of short card codes into a deck
func ParseAll(codes ...string) (Deck, error) {
	cards := make(Deck, 0, len(codes))
	for _, code := range codes {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
