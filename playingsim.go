package playingsim

import (
	"fmt"

	"github.com/dekarrin/playingsim/klondike"
	"github.com/dekarrin/playingsim/protocol"
	uuid "github.com/satori/go.uuid"
)

// Move is one instruction from a MoveSource. Command is protocol.Turn to
// play Action, protocol.Undo to retract the previous turn, or
// protocol.Concede to end the session.
type Move struct {
	Command protocol.Cmd
	Action  klondike.Action
}

// PlayAction wraps an action as a Turn instruction
func PlayAction(a klondike.Action) Move {
	return Move{Command: protocol.Turn, Action: a}
}

// MoveSource produces the moves a session plays. A human at a console, a
// websocket client and a scripted test driver all satisfy it.
type MoveSource interface {
	// NextMove chooses the next instruction for the given position.
	NextMove(s klondike.State) Move

	// Reject tells the source its last move was refused, with the reason.
	// The session will ask again.
	Reject(m Move, err error)
}

// Session binds one game to the source of its moves
type Session struct {
	ID     string
	Game   *klondike.Game
	Source MoveSource
}

// NewSession creates a session with a fresh ID
func NewSession(g *klondike.Game, src MoveSource) *Session {
	return &Session{
		ID:     uuid.NewV4().String(),
		Game:   g,
		Source: src,
	}
}

// Play runs the session to completion
func (s *Session) Play() error {
	return PlayUntilDone(s.Game, s.Source)
}

// PlayUntilDone drives the game with moves from source until the game is
// won or the source concedes. A move that breaks the rules is reported back
// to the source and the source is asked again; any other failure ends the
// session with that error.
func PlayUntilDone(game *klondike.Game, source MoveSource) error {
	for game.Running() {
		m := source.NextMove(game.State())

		var err error
		switch m.Command {
		case protocol.Turn:
			err = game.TakeTurn(0, m.Action)
		case protocol.Undo:
			err = game.Undo()
		case protocol.Concede:
			return nil
		default:
			return fmt.Errorf("move source sent unexpected command %s", m.Command)
		}

		if err != nil {
			if !klondike.IsRulesViolation(err) {
				return err
			}
			source.Reject(m, err)
		}
	}
	return nil
}
