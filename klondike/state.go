package klondike

import (
	"fmt"

	"github.com/dekarrin/playingsim/deck"
)

// State is a fully-owned snapshot of the playfield. It is built by deep
// copy, shares no storage with the live game or with any other snapshot,
// and is consumed purely for querying: move enumeration, stock visibility,
// the dead-state heuristic, or materialising a hypothetical next state via
// After.
type State struct {
	Tableau     []*Pile
	Foundations map[deck.Suit]*Foundation
	Stock       deck.Deck
	Waste       deck.Deck

	// CurrentPass is the stock pass currently in progress, starting at 1.
	CurrentPass int

	// PassLimit is the configured number of stock passes; 0 is unlimited.
	PassLimit int

	// DrawCount is the number of cards revealed per stock draw.
	DrawCount int
}

// Clone returns a deep copy of the state sharing no storage with the
// original
func (s State) Clone() State {
	cloned := State{
		Tableau:     make([]*Pile, len(s.Tableau)),
		Foundations: make(map[deck.Suit]*Foundation, len(s.Foundations)),
		Stock:       s.Stock.Clone(),
		Waste:       s.Waste.Clone(),
		CurrentPass: s.CurrentPass,
		PassLimit:   s.PassLimit,
		DrawCount:   s.DrawCount,
	}
	for i, p := range s.Tableau {
		cloned.Tableau[i] = p.Clone()
	}
	for suit, f := range s.Foundations {
		cloned.Foundations[suit] = f.Clone()
	}
	return cloned
}

// Hand returns the currently viewed cards of the waste pile: the top
// DrawCount cards, or fewer. Only the top card is playable.
func (s State) Hand() []deck.Card {
	return s.Waste.TopN(s.DrawCount)
}

// Won reports whether every foundation is complete
func (s State) Won() bool {
	for _, suit := range deck.Suits {
		if !s.Foundations[suit].Complete() {
			return false
		}
	}
	return true
}

// After returns the state that would result from applying the given action,
// without touching the receiver. The action must be legal; the error
// explains why when it is not.
func (s State) After(a Action) (State, error) {
	next := s.Clone()
	if err := next.apply(a); err != nil {
		return State{}, err
	}
	return next, nil
}

// apply mutates the state by executing the action. It is only ever invoked
// on disposable clones, so a mid-validation failure simply discards the
// clone; callers observe all-or-nothing semantics.
func (s *State) apply(a Action) error {
	switch a.Type {
	case ActionDraw:
		return s.drawStock()
	case ActionMoveStack:
		return s.moveStack(a.FromPile, a.ToPile, a.Count)
	case ActionMoveOne:
		return s.moveOne(a.Source, a.Dest)
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
}

// drawStock moves up to DrawCount cards from the stock to the top of the
// waste, first flipping the waste back into the stock if the stock is
// empty. The last-drawn card ends on top of the waste.
func (s *State) drawStock() error {
	if s.Stock.Empty() {
		if s.Waste.Empty() {
			return ErrStockExhausted
		}
		if s.PassLimit != 0 && s.CurrentPass >= s.PassLimit {
			return ErrPassLimitReached
		}
		s.Stock = s.Waste
		s.Stock.Reverse()
		s.Waste = deck.Deck{}
		s.CurrentPass++
	}

	for i := 0; i < s.DrawCount; i++ {
		c, err := s.Stock.Draw()
		if err != nil {
			break
		}
		s.Waste.Insert(0, c)
	}
	return nil
}

func (s *State) pileAt(index int) (*Pile, error) {
	if index < 0 || index >= len(s.Tableau) {
		return nil, fmt.Errorf("no tableau pile at index %d", index)
	}
	return s.Tableau[index], nil
}

func (s *State) moveStack(from, to, count int) error {
	src, err := s.pileAt(from)
	if err != nil {
		return err
	}
	dst, err := s.pileAt(to)
	if err != nil {
		return err
	}

	cards, err := src.Take(count)
	if err != nil {
		return err
	}
	return dst.Give(cards)
}

func (s *State) moveOne(source, dest Location) error {
	var card deck.Card

	// peek at the moving card first so a bad destination never mutates the
	// source
	switch source.Type {
	case LocWaste:
		top, ok := s.Waste.Top()
		if !ok {
			return fmt.Errorf("%w: the waste pile is empty", ErrInsufficientCards)
		}
		card = top
	case LocTableau:
		p, err := s.pileAt(source.Pile)
		if err != nil {
			return err
		}
		top, ok := p.Top()
		if !ok {
			return fmt.Errorf("%w: %s is empty", ErrInsufficientCards, source)
		}
		card = top
	case LocFoundation:
		top, ok := s.Foundations[source.Suit].Top()
		if !ok {
			return fmt.Errorf("%w: %s is empty", ErrInsufficientCards, source)
		}
		card = top
	}

	// check the destination will accept it
	switch dest.Type {
	case LocTableau:
		p, err := s.pileAt(dest.Pile)
		if err != nil {
			return err
		}
		if !p.NeedsCard(card) {
			alts := p.Needs()
			if len(alts) == 0 {
				return fmt.Errorf("%w: %s accepts no cards", ErrIllegalPlacement, dest)
			}
			return fmt.Errorf("%w: %s accepts %v, not %s", ErrIllegalPlacement, dest, alts, card)
		}
	case LocFoundation:
		need, ok := s.Foundations[dest.Suit].Needs()
		if !ok {
			return fmt.Errorf("%w: %s is complete", ErrIllegalPlacement, dest)
		}
		if card != need {
			return fmt.Errorf("%w: %s needs %s, not %s", ErrIllegalPlacement, dest, need, card)
		}
	default:
		return fmt.Errorf("cannot move a card to %s", dest)
	}

	// commit: remove from source, then place
	switch source.Type {
	case LocWaste:
		if _, err := s.Waste.Draw(); err != nil {
			return err
		}
	case LocTableau:
		if _, err := s.Tableau[source.Pile].Take(1); err != nil {
			return err
		}
	case LocFoundation:
		if _, err := s.Foundations[source.Suit].Take(); err != nil {
			return err
		}
	}

	switch dest.Type {
	case LocTableau:
		return s.Tableau[dest.Pile].Give([]deck.Card{card})
	default:
		return s.Foundations[dest.Suit].Add(card)
	}
}

// LegalMoves enumerates every move legal in this state. The order is fixed
// and deterministic: the stock draw first, then waste plays, tableau tops
// to foundations, pile-to-pile stack moves ordered by (source, dest), and
// finally foundation tops back to the tableau.
func (s State) LegalMoves() []Action {
	moves := []Action{}

	canFlip := s.PassLimit == 0 || s.CurrentPass < s.PassLimit
	if !s.Stock.Empty() || (!s.Waste.Empty() && canFlip) {
		moves = append(moves, Draw())
	}

	if top, ok := s.Waste.Top(); ok {
		for i, p := range s.Tableau {
			if p.NeedsCard(top) {
				moves = append(moves, Action{Type: ActionMoveOne, Source: WastePosition(), Dest: TableauPosition(i)})
			}
		}
		if need, ok := s.Foundations[top.Suit].Needs(); ok && need == top {
			moves = append(moves, Action{Type: ActionMoveOne, Source: WastePosition(), Dest: FoundationPosition(top.Suit)})
		}
	}

	for i, p := range s.Tableau {
		top, ok := p.Top()
		if !ok {
			continue
		}
		if need, ok := s.Foundations[top.Suit].Needs(); ok && need == top {
			moves = append(moves, Action{Type: ActionMoveOne, Source: TableauPosition(i), Dest: FoundationPosition(top.Suit)})
		}
	}

	// at most one contiguous legal run exists per source/dest pair, so the
	// first matching depth is the only stack move to emit
	for i, src := range s.Tableau {
		for j, dst := range s.Tableau {
			if i == j {
				continue
			}
			for depth, c := range src.Shown() {
				if dst.NeedsCard(c) {
					moves = append(moves, Action{Type: ActionMoveStack, FromPile: i, ToPile: j, Count: depth + 1})
					break
				}
			}
		}
	}

	for _, suit := range deck.Suits {
		top, ok := s.Foundations[suit].Top()
		if !ok {
			continue
		}
		for i, p := range s.Tableau {
			if p.NeedsCard(top) {
				moves = append(moves, Action{Type: ActionMoveOne, Source: FoundationPosition(suit), Dest: TableauPosition(i)})
			}
		}
	}

	return moves
}

// AccessibleStockCards returns the stock and waste cards the player has
// legitimate knowledge of: the waste top, plus every card some sequence of
// legal draws from here would land on. A card the player has never seen at
// a draw boundary stays unknown even though it is physically present.
func (s State) AccessibleStockCards() []deck.Card {
	found := []deck.Card{}
	add := func(card deck.Card) {
		for _, c := range found {
			if c == card {
				return
			}
		}
		found = append(found, card)
	}

	if top, ok := s.Waste.Top(); ok {
		add(top)
	}

	// once the player has cycled the stock at least once, every card on a
	// draw boundary of the current stock has been seen
	if !s.Stock.Empty() && s.CurrentPass > 1 {
		for _, c := range drawBoundaryCards(s.Stock, s.DrawCount) {
			add(c)
		}
	}

	// if another flip is still permitted, the cards that will land on draw
	// boundaries of the next pass are knowable too
	canFlip := s.PassLimit == 0 || s.CurrentPass < s.PassLimit
	if len(s.Waste) >= s.DrawCount && canFlip {
		stock := s.Stock.Clone()
		waste := s.Waste.Clone()

		// a waste not aligned to the draw count shifts which cards land on
		// boundaries after the flip; drawing one more batch models that,
		// but only once the player has cycled and so knows the batch
		if len(waste)%s.DrawCount != 0 && s.CurrentPass > 1 && !stock.Empty() {
			for _, c := range stock.DrawUpTo(s.DrawCount) {
				waste.Insert(0, c)
			}
		}

		waste.Reverse()
		for _, c := range drawBoundaryCards(waste, s.DrawCount) {
			add(c)
		}
	}

	return found
}

// drawBoundaryCards returns the cards of d that would surface as the waste
// top during successive draws of drawCount cards: every drawCount-th card,
// plus the final card, which ends the last (possibly short) batch on top.
func drawBoundaryCards(d deck.Deck, drawCount int) []deck.Card {
	if len(d) == 0 {
		return nil
	}
	cards := []deck.Card{}
	for pos := drawCount - 1; pos < len(d); pos += drawCount {
		cards = append(cards, d[pos])
	}
	if len(d)%drawCount != 0 {
		cards = append(cards, d[len(d)-1])
	}
	return cards
}
