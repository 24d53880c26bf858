package klondike

import (
	"github.com/dekarrin/playingsim/deck"
)

// Ternary is a three-valued answer for queries that may lack the
// information needed for a definite yes or no.
type Ternary int

const (
	Indeterminate Ternary = iota
	No
	Yes
)

func (t Ternary) String() string {
	switch t {
	case No:
		return "no"
	case Yes:
		return "yes"
	default:
		return "indeterminate"
	}
}

// HasUsefulMoves reports whether any legal move from this state makes
// progress toward winning. It is a one-step lookahead heuristic, not a
// proof of unsolvability.
//
// Until the stock has been cycled at least once the player has not seen
// enough of the deck to judge, and the answer is Indeterminate; with a pass
// limit of 1 that information never arrives, so the answer stays
// Indeterminate for the whole game. Otherwise a move counts as useful if it
// sends a card to a foundation, reveals a hidden card that is immediately
// playable, frees a tableau slot while a King is in reach, or opens a
// destination for a card the player can actually get to — and the state is
// dead only when no move qualifies and no accessible stock card is
// playable.
func (s State) HasUsefulMoves() Ternary {
	if s.CurrentPass <= 1 {
		return Indeterminate
	}

	moves := s.LegalMoves()
	if len(moves) == 0 {
		return No
	}

	for _, m := range moves {
		switch m.Type {
		case ActionDraw:
			// drawing only helps if it surfaces a playable card, which the
			// accessible-card check below answers

		case ActionMoveOne:
			if m.Dest.Type == LocFoundation {
				return Yes
			}
			if m.Source.Type == LocWaste {
				// the waste top is accessible; the check below covers it
				continue
			}
			if s.moveIsUseful(m) {
				return Yes
			}

		case ActionMoveStack:
			if s.moveIsUseful(m) {
				return Yes
			}
		}
	}

	for _, c := range s.AccessibleStockCards() {
		if s.playable(c) {
			return Yes
		}
	}

	return No
}

// moveIsUseful applies the move hypothetically and checks whether the
// resulting position is better: a newly revealed card that can be played
// at once, a freshly emptied slot with a King in reach to claim it, or a
// new destination opened for a reachable card.
func (s State) moveIsUseful(a Action) bool {
	after, err := s.After(a)
	if err != nil {
		return false
	}

	if after.hiddenCount() < s.hiddenCount() {
		srcIdx := a.FromPile
		if a.Type == ActionMoveOne {
			srcIdx = a.Source.Pile
		}
		if top, ok := after.Tableau[srcIdx].Top(); ok && after.playable(top) {
			return true
		}
	}

	if after.emptyPileCount() > s.emptyPileCount() && s.kingInReach() {
		return true
	}

	return s.opensDestinations(after)
}

// playable reports whether the card could be placed somewhere right now
func (s State) playable(card deck.Card) bool {
	if need, ok := s.Foundations[card.Suit].Needs(); ok && need == card {
		return true
	}
	for _, p := range s.Tableau {
		if p.NeedsCard(card) {
			return true
		}
	}
	return false
}

func (s State) hiddenCount() int {
	n := 0
	for _, p := range s.Tableau {
		n += p.HiddenCount()
	}
	return n
}

func (s State) emptyPileCount() int {
	n := 0
	for _, p := range s.Tableau {
		if p.Empty() {
			n++
		}
	}
	return n
}

// kingInReach reports whether some King could be moved onto an empty slot
// with anything to show for it: a King among the accessible stock cards, or
// a revealed tableau King with hidden cards left underneath it.
func (s State) kingInReach() bool {
	for _, c := range s.AccessibleStockCards() {
		if c.Rank == deck.King {
			return true
		}
	}
	for _, p := range s.Tableau {
		if p.HiddenCount() == 0 {
			continue
		}
		for _, c := range p.Shown() {
			if c.Rank == deck.King {
				return true
			}
		}
	}
	return false
}

// cardClass identifies the cards interchangeable for tableau placement:
// same rank, either suit of the same color.
type cardClass struct {
	rank  deck.Rank
	color deck.Color
}

// opensDestinations reports whether moving from s to after strictly
// increases the tableau destinations for some card class that has more
// reachable cards than destinations today.
func (s State) opensDestinations(after State) bool {
	before := s.destinationCounts()
	reach := s.reachableCounts()

	for class, n := range after.destinationCounts() {
		if n > before[class] && before[class] < reach[class] {
			return true
		}
	}
	return false
}

// destinationCounts counts, per card class, the tableau piles that would
// accept a card of that class right now
func (s State) destinationCounts() map[cardClass]int {
	counts := map[cardClass]int{}
	for _, p := range s.Tableau {
		seen := map[cardClass]bool{}
		for _, c := range p.Needs() {
			class := cardClass{rank: c.Rank, color: c.Color()}
			if !seen[class] {
				seen[class] = true
				counts[class]++
			}
		}
	}
	return counts
}

// reachableCounts counts, per card class, the distinct cards the player
// could actually bring to a tableau destination: accessible stock cards,
// any revealed tableau card, and foundation tops.
func (s State) reachableCounts() map[cardClass]int {
	seen := map[deck.Card]bool{}
	note := func(c deck.Card) {
		seen[c] = true
	}

	for _, c := range s.AccessibleStockCards() {
		note(c)
	}
	for _, p := range s.Tableau {
		for _, c := range p.Shown() {
			note(c)
		}
	}
	for _, suit := range deck.Suits {
		if top, ok := s.Foundations[suit].Top(); ok {
			note(top)
		}
	}

	counts := map[cardClass]int{}
	for c := range seen {
		counts[cardClass{rank: c.Rank, color: c.Color()}]++
	}
	return counts
}
