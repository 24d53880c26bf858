package klondike

import (
	"errors"
	"fmt"
)

// ErrRulesViolation is the common ancestor of every error that reports an
// illegal but recoverable move. Callers should present the reason and
// solicit a different move; game state is guaranteed unchanged. Errors that
// do not wrap it signal caller misuse (malformed actions, bad indices) and
// are never recoverable by retrying the same call.
var ErrRulesViolation = errors.New("rules violation")

var (
	// ErrInsufficientCards is returned when taking more cards from a pile
	// than it has revealed
	ErrInsufficientCards = fmt.Errorf("%w: not enough revealed cards", ErrRulesViolation)

	// ErrInvalidStack is returned when a run of cards does not itself
	// alternate in color and descend in rank
	ErrInvalidStack = fmt.Errorf("%w: cards do not form a valid stack", ErrRulesViolation)

	// ErrIllegalPlacement is returned when a card or run cannot legally be
	// placed on its destination
	ErrIllegalPlacement = fmt.Errorf("%w: card cannot be placed there", ErrRulesViolation)

	// ErrStockExhausted is returned when drawing with both stock and waste
	// empty
	ErrStockExhausted = fmt.Errorf("%w: stock and waste piles are empty", ErrRulesViolation)

	// ErrPassLimitReached is returned when flipping the waste would exceed
	// the configured stock pass limit
	ErrPassLimitReached = fmt.Errorf("%w: stock pass limit reached", ErrRulesViolation)

	// ErrNothingToUndo is returned when undoing past the initial deal
	ErrNothingToUndo = fmt.Errorf("%w: nothing to undo", ErrRulesViolation)
)

// ErrInvalidPlayer is returned by TakeTurn for any player other than 0.
// Klondike is a single-player game, so this is caller misuse, not a rules
// violation.
var ErrInvalidPlayer = errors.New("no such player")

// IsRulesViolation reports whether err is a recoverable rules violation,
// as opposed to a structural/programmer error
func IsRulesViolation(err error) bool {
	return errors.Is(err, ErrRulesViolation)
}
