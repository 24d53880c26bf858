package protocol

// Cmd represents a command exchanged between a game session and whoever is
// driving it, whether that is the console runner or a websocket client.
type Cmd int

const (
	Null Cmd = iota
	New
	State
	Turn
	Undo
	Concede
	Error
	GameOver
)

var CmdNames = map[Cmd]string{
	Null:     "Null",
	New:      "New",
	State:    "State",
	Turn:     "Turn",
	Undo:     "Undo",
	Concede:  "Concede",
	Error:    "Error",
	GameOver: "GameOver",
}

var NameToCmd = map[string]Cmd{
	"Null":     Null,
	"New":      New,
	"State":    State,
	"Turn":     Turn,
	"Undo":     Undo,
	"Concede":  Concede,
	"Error":    Error,
	"GameOver": GameOver,
}

func (c Cmd) String() string {
	return CmdNames[c]
}
