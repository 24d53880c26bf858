package klondike

import (
	"fmt"

	"github.com/dekarrin/playingsim/deck"
)

const (
	defaultDrawCount = 1
	defaultNumPiles  = 7
)

// Options configures a new game. The zero value plays standard Klondike:
// draw one, unlimited stock passes, seven piles, freshly shuffled deck.
type Options struct {
	// DrawCount is the number of cards revealed per stock draw; 1 if unset.
	DrawCount int

	// PassLimit is the number of passes through the stock permitted; 0 is
	// unlimited.
	PassLimit int

	// Deck is a fixed starting deck to deal from. If nil, a freshly
	// shuffled standard deck is used.
	Deck deck.Deck

	// NumPiles is the number of tableau piles; 7 if unset. Pile i is dealt
	// i+1 cards.
	NumPiles int
}

// Rules is a read-only record of the parameters a game was created with,
// for reproducibility and display.
type Rules struct {
	DrawCount  int      `json:"draw_count"`
	PassLimit  int      `json:"stock_pass_limit"`
	NumPiles   int      `json:"num_piles"`
	RandomDeck bool     `json:"random_deck"`
	Deck       []string `json:"deck"`
}

// Game is one mutable Klondike session. It owns its containers and history
// exclusively; a Game must be confined to a single caller at a time, and
// independent games share nothing.
type Game struct {
	current State
	history []State
	rules   Rules
}

// NewGame deals a new game of Klondike Solitaire
func NewGame(opts Options) (*Game, error) {
	drawCount := opts.DrawCount
	if drawCount == 0 {
		drawCount = defaultDrawCount
	}
	if drawCount < 0 {
		return nil, fmt.Errorf("draw count must be positive, not %d", drawCount)
	}
	if opts.PassLimit < 0 {
		return nil, fmt.Errorf("stock pass limit must not be negative, got %d", opts.PassLimit)
	}

	numPiles := opts.NumPiles
	if numPiles == 0 {
		numPiles = defaultNumPiles
	}
	if numPiles < 1 {
		return nil, fmt.Errorf("need at least one tableau pile, got %d", numPiles)
	}

	randomDeck := opts.Deck == nil
	var startingDeck deck.Deck
	if randomDeck {
		startingDeck = deck.New()
		startingDeck.Shuffle()
	} else {
		startingDeck = opts.Deck.Clone()
	}

	// dealing pile i takes i+1 cards
	if need := numPiles * (numPiles + 1) / 2; len(startingDeck) < need+1 {
		return nil, fmt.Errorf("%d piles need %d cards plus a first draw; deck has %d", numPiles, need, len(startingDeck))
	}

	g := &Game{
		rules: Rules{
			DrawCount:  drawCount,
			PassLimit:  opts.PassLimit,
			NumPiles:   numPiles,
			RandomDeck: randomDeck,
			Deck:       startingDeck.Codes(),
		},
	}

	g.current = State{
		Tableau:     make([]*Pile, 0, numPiles),
		Foundations: make(map[deck.Suit]*Foundation, len(deck.Suits)),
		Stock:       startingDeck.Clone(),
		Waste:       deck.Deck{},
		CurrentPass: 1,
		PassLimit:   opts.PassLimit,
		DrawCount:   drawCount,
	}
	for _, suit := range deck.Suits {
		g.current.Foundations[suit] = NewFoundation(suit)
	}

	// build the tableau: the last card dealt to each pile is turned face-up
	for i := 0; i < numPiles; i++ {
		dealt, err := g.current.Stock.DrawN(i + 1)
		if err != nil {
			return nil, err
		}
		reverse(dealt)
		g.current.Tableau = append(g.current.Tableau, NewPile(dealt))
	}

	// pull the first hand
	if err := g.current.drawStock(); err != nil {
		return nil, err
	}

	g.history = []State{g.current.Clone()}
	return g, nil
}

func reverse(cards []deck.Card) {
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Rules returns the read-only record of the game's configuration
func (g *Game) Rules() Rules {
	r := g.rules
	r.Deck = append([]string(nil), g.rules.Deck...)
	return r
}

// State returns an independent snapshot of the current position
func (g *Game) State() State {
	return g.current.Clone()
}

// Running reports whether the game is still going. It returns false once
// every foundation is complete.
func (g *Game) Running() bool {
	return !g.current.Won()
}

// TakeTurn executes the given action for the given player. Klondike is
// single-player, so player must be 0. On success a fresh snapshot is
// appended to the history; on any failure the game is left exactly as it
// was.
func (g *Game) TakeTurn(player int, a Action) error {
	if player != 0 {
		return fmt.Errorf("%w: player %d", ErrInvalidPlayer, player)
	}

	next := g.current.Clone()
	if err := next.apply(a); err != nil {
		return err
	}

	g.current = next
	g.history = append(g.history, next.Clone())
	return nil
}

// Undo discards the most recent turn and restores the position before it.
// The initial deal cannot be undone.
func (g *Game) Undo() error {
	if len(g.history) <= 1 {
		return ErrNothingToUndo
	}
	g.history = g.history[:len(g.history)-1]
	g.current = g.history[len(g.history)-1].Clone()
	return nil
}

// Turns returns the number of successfully applied actions so far
func (g *Game) Turns() int {
	return len(g.history) - 1
}
