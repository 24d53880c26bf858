package protocol

import (
	"github.com/dekarrin/playingsim/deck"
	"github.com/dekarrin/playingsim/klondike"
)

// InboundMessage is a message from a client to a game session. A Turn
// command carries Decision, the index of the chosen move in the Moves list
// of the most recent OutboundMessage.
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	GameID   string `json:"gameID"`
	Command  Cmd    `json:"command"`
	Decision int    `json:"decision"`
}

// OutboundMessage is a message from a game session to a client
type OutboundMessage struct {
	PlayerID string    `json:"playerID"`
	GameID   string    `json:"gameID"`
	Command  Cmd       `json:"command"`
	Message  string    `json:"message,omitempty"`
	View     *GameView `json:"view,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// PileView is the visible portion of one tableau pile: the face-up cards as
// codes, topmost first, and a count of the face-down cards beneath them.
type PileView struct {
	Shown    []string `json:"shown"`
	FaceDown int      `json:"faceDown"`
}

// GameView is a client's picture of a position. Cards the player could not
// see at a real table appear only as counts.
type GameView struct {
	Piles       []PileView        `json:"piles"`
	Foundations map[string]string `json:"foundations"`
	Hand        []string          `json:"hand"`
	StockCount  int               `json:"stockCount"`
	WasteCount  int               `json:"wasteCount"`
	CurrentPass int               `json:"currentPass"`
	PassLimit   int               `json:"stockPassLimit"`
	DrawCount   int               `json:"drawCount"`
	Moves       []string          `json:"moves"`
	Dead        string            `json:"dead"`
	Won         bool              `json:"won"`
	Turns       int               `json:"turns"`
}

// ViewOf renders a position as a GameView
func ViewOf(s klondike.State, turns int) *GameView {
	v := &GameView{
		Piles:       make([]PileView, 0, len(s.Tableau)),
		Foundations: make(map[string]string, len(deck.Suits)),
		Hand:        []string{},
		StockCount:  len(s.Stock),
		WasteCount:  len(s.Waste),
		CurrentPass: s.CurrentPass,
		PassLimit:   s.PassLimit,
		DrawCount:   s.DrawCount,
		Moves:       []string{},
		Dead:        s.HasUsefulMoves().String(),
		Won:         s.Won(),
		Turns:       turns,
	}

	for _, p := range s.Tableau {
		pv := PileView{Shown: []string{}, FaceDown: p.HiddenCount()}
		for _, c := range p.Shown() {
			pv.Shown = append(pv.Shown, c.String())
		}
		v.Piles = append(v.Piles, pv)
	}

	for _, suit := range deck.Suits {
		top, ok := s.Foundations[suit].Top()
		if ok {
			v.Foundations[suit.String()] = top.String()
		} else {
			v.Foundations[suit.String()] = ""
		}
	}

	for _, c := range s.Hand() {
		v.Hand = append(v.Hand, c.String())
	}

	for _, m := range s.LegalMoves() {
		v.Moves = append(v.Moves, m.String())
	}

	return v
}
