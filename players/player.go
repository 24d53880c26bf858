package players

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dekarrin/playingsim"
	"github.com/dekarrin/playingsim/klondike"
	"github.com/dekarrin/playingsim/protocol"
	uuid "github.com/satori/go.uuid"
)

const (
	selectMoveText = "Select move\n"
	undoChoiceText = "U) Undo last move\n"
	quitChoiceText = "Q) Give up\n"
	retryText      = "Please enter one of the items above\n"
	rejectedText   = "Illegal move: %v\nTry again\n"
	promptText     = "==> "
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// ConsolePlayer is a human playing at a terminal. It renders the board,
// lists the legal moves by number and reads the choice, so it satisfies
// playingsim.MoveSource.
type ConsolePlayer struct {
	id   string
	name string
	in   *bufio.Scanner
	out  io.Writer
}

// NewConsolePlayer constructs a console player reading choices from in and
// writing the board and prompts to out
func NewConsolePlayer(name string, in io.Reader, out io.Writer) *ConsolePlayer {
	return &ConsolePlayer{
		id:   NewID(),
		name: name,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (p *ConsolePlayer) ID() string {
	return p.id
}

func (p *ConsolePlayer) Name() string {
	return p.name
}

// NextMove shows the position and the numbered legal moves, then reads a
// selection. "U" retracts the previous turn and "Q" concedes; so does
// running out of input.
func (p *ConsolePlayer) NextMove(s klondike.State) playingsim.Move {
	SendText(p.out, BuildBoardText(s))

	moves := s.LegalMoves()

	SendText(p.out, selectMoveText)
	for i, m := range moves {
		SendText(p.out, "%d) %s\n", i+1, m)
	}
	SendText(p.out, undoChoiceText)
	SendText(p.out, quitChoiceText)

	for {
		SendText(p.out, promptText)
		if !p.in.Scan() {
			return playingsim.Move{Command: protocol.Concede}
		}
		entry := strings.TrimSpace(p.in.Text())

		switch strings.ToUpper(entry) {
		case "U":
			return playingsim.Move{Command: protocol.Undo}
		case "Q":
			return playingsim.Move{Command: protocol.Concede}
		}

		n, err := strconv.Atoi(entry)
		if err != nil || n < 1 || n > len(moves) {
			SendText(p.out, retryText)
			continue
		}
		return playingsim.PlayAction(moves[n-1])
	}
}

// Reject reports a refused move and its reason
func (p *ConsolePlayer) Reject(_ playingsim.Move, err error) {
	SendText(p.out, rejectedText, err)
}
