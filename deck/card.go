package deck

import (
	"errors"
	"fmt"
	"strings"
)

// Suit represents a French playing card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in declaration order. Declaration order is used
// only as a tie-break, never for gameplay legality.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

func (s Suit) String() string {
	return suitNames[s]
}

// Black reports whether the suit is clubs or spades
func (s Suit) Black() bool {
	return s == Clubs || s == Spades
}

// Red reports whether the suit is diamonds or hearts
func (s Suit) Red() bool {
	return !s.Black()
}

// Color represents the color of a suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Color returns the color of the suit
func (s Suit) Color() Color {
	if s.Black() {
		return Black
	}
	return Red
}

// Rank represents a French playing card rank of Ace (1) through King (13).
// Rank arithmetic (r+1, r-1) is meaningful for adjacency checks; King has
// no successor and Ace has no predecessor.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

func (r Rank) String() string {
	return rankNames[r-1]
}

// Short returns the rank's one or two character code, e.g. "A" or "10"
func (r Rank) Short() string {
	switch {
	case r == Ace:
		return "A"
	case r <= Ten:
		return fmt.Sprintf("%d", int(r))
	default:
		return rankNames[r-1][:1]
	}
}

// Card represents a French playing card. It is an immutable value type;
// equality is structural.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card's short code, e.g. "AC" or "10D"
func (c Card) String() string {
	return c.Rank.Short() + c.Suit.String()[:1]
}

// Name returns the card's long name, e.g. "Ace of Clubs"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Color returns the card's color
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Black reports whether the card is a black card
func (c Card) Black() bool {
	return c.Suit.Black()
}

// Red reports whether the card is a red card
func (c Card) Red() bool {
	return c.Suit.Red()
}

// Less orders cards by rank, with suit declaration order as a tie-break
func (c Card) Less(other Card) bool {
	if c.Rank == other.Rank {
		return c.Suit < other.Suit
	}
	return c.Rank < other.Rank
}

// ErrBadCardCode is returned by Parse for unrecognisable card codes
var ErrBadCardCode = errors.New("not a valid card code")

// Parse converts a short card code such as "AC", "10D" or "TD" back into a
// Card. It is the inverse of Card.String.
func Parse(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrBadCardCode, code)
	}

	rankPart, suitPart := code[:len(code)-1], code[len(code)-1]

	var rank Rank
	switch rankPart {
	case "A", "1":
		rank = Ace
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = Rank(rankPart[0] - '0')
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadCardCode, code)
	}

	var suit Suit
	switch suitPart {
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrBadCardCode, code)
	}

	return Card{Rank: rank, Suit: suit}, nil
}
