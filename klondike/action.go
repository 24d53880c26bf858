package klondike

import (
	"fmt"

	"github.com/dekarrin/playingsim/deck"
)

// LocationType tags the variant held by a Location
type LocationType int

const (
	LocTableau LocationType = iota
	LocFoundation
	LocWaste
)

// Location identifies a place on the playfield a single card can move to or
// from. It is a closed set: a tableau pile, a foundation, or the waste.
type Location struct {
	Type LocationType

	// Pile is the tableau pile index; only meaningful for LocTableau.
	Pile int

	// Suit is the foundation suit; only meaningful for LocFoundation.
	Suit deck.Suit
}

// TableauPosition returns the location of the tableau pile at the given
// index
func TableauPosition(pile int) Location {
	return Location{Type: LocTableau, Pile: pile}
}

// FoundationPosition returns the location of the foundation for the given
// suit
func FoundationPosition(suit deck.Suit) Location {
	return Location{Type: LocFoundation, Suit: suit}
}

// WastePosition returns the location of the waste pile
func WastePosition() Location {
	return Location{Type: LocWaste}
}

func (l Location) String() string {
	switch l.Type {
	case LocTableau:
		return fmt.Sprintf("pile %d", l.Pile+1)
	case LocFoundation:
		return fmt.Sprintf("%s foundation", l.Suit)
	default:
		return "the waste pile"
	}
}

// ActionType tags the variant held by an Action
type ActionType int

const (
	// ActionDraw draws from the stock to the waste, flipping the waste back
	// into the stock first if the stock is empty
	ActionDraw ActionType = iota

	// ActionMoveOne moves a single card between two locations
	ActionMoveOne

	// ActionMoveStack moves a run of revealed cards between two tableau
	// piles
	ActionMoveStack
)

// Action describes one move a player can make. It is a closed set of
// variants; use the constructors, which reject structurally impossible
// moves before they ever reach the game. Whether a structurally valid move
// is legal right now is a separate question, answered against a State or by
// Game.TakeTurn.
type Action struct {
	Type ActionType

	// Source and Dest are the endpoints of a MoveOne.
	Source Location
	Dest   Location

	// FromPile, ToPile and Count describe a MoveStack.
	FromPile int
	ToPile   int
	Count    int
}

// Draw returns the stock-draw action
func Draw() Action {
	return Action{Type: ActionDraw}
}

// MoveOne returns an action moving a single card from source to dest. Cards
// can never be moved back to the waste, and source and dest must differ.
func MoveOne(source, dest Location) (Action, error) {
	if dest.Type == LocWaste {
		return Action{}, fmt.Errorf("cannot move a card to the waste pile")
	}
	if source == dest {
		return Action{}, fmt.Errorf("source and destination are both %s", source)
	}
	if source.Type == LocTableau && source.Pile < 0 {
		return Action{}, fmt.Errorf("negative source pile index %d", source.Pile)
	}
	if dest.Type == LocTableau && dest.Pile < 0 {
		return Action{}, fmt.Errorf("negative destination pile index %d", dest.Pile)
	}
	return Action{Type: ActionMoveOne, Source: source, Dest: dest}, nil
}

// MoveStack returns an action moving count revealed cards from one tableau
// pile to another
func MoveStack(fromPile, toPile, count int) (Action, error) {
	if fromPile < 0 || toPile < 0 {
		return Action{}, fmt.Errorf("negative pile index")
	}
	if fromPile == toPile {
		return Action{}, fmt.Errorf("source and destination are both pile %d", fromPile+1)
	}
	if count < 1 {
		return Action{}, fmt.Errorf("must move at least one card, not %d", count)
	}
	return Action{Type: ActionMoveStack, FromPile: fromPile, ToPile: toPile, Count: count}, nil
}

func (a Action) String() string {
	switch a.Type {
	case ActionDraw:
		return "draw from stock"
	case ActionMoveOne:
		return fmt.Sprintf("move a card from %s to %s", a.Source, a.Dest)
	default:
		if a.Count == 1 {
			return fmt.Sprintf("move 1 card from pile %d to pile %d", a.FromPile+1, a.ToPile+1)
		}
		return fmt.Sprintf("move %d cards from pile %d to pile %d", a.Count, a.FromPile+1, a.ToPile+1)
	}
}
