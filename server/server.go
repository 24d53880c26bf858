package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/dekarrin/playingsim/deck"
	"github.com/dekarrin/playingsim/klondike"
	"github.com/dekarrin/playingsim/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewGameReq is a request to create a new game. All fields are optional;
// the zero value deals standard draw-1 Klondike from a shuffled deck.
type NewGameReq struct {
	DrawCount int      `json:"draw_count"`
	PassLimit int      `json:"stock_pass_limit"`
	NumPiles  int      `json:"num_piles"`
	Deck      []string `json:"deck,omitempty"`
}

// NewGameRes describes a freshly created game
type NewGameRes struct {
	GameID string             `json:"game_id"`
	Rules  klondike.Rules     `json:"rules"`
	View   *protocol.GameView `json:"view"`
}

// GameServer hosts Klondike games over HTTP and websocket
type GameServer struct {
	store GameStore
	log   *logrus.Logger
	http.Server
}

// NewGameID generates a six letter game code
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	rand.Seed(time.Now().UnixNano())

	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(store GameStore, logger *logrus.Logger) *GameServer {
	s := &GameServer{store: store, log: logger}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.Handler = handlers.CombinedLoggingHandler(
		logger.Writer(),
		handlers.CORS(handlers.AllowedOrigins([]string{"*"}))(router),
	)

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (s *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req NewGameReq
	err := json.NewDecoder(r.Body).Decode(&req)
	defer r.Body.Close()
	if err != nil {
		s.writeParseError(err, w)
		return
	}

	opts := klondike.Options{
		DrawCount: req.DrawCount,
		PassLimit: req.PassLimit,
		NumPiles:  req.NumPiles,
	}
	if len(req.Deck) > 0 {
		d, err := deck.ParseAll(req.Deck...)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(err.Error()))
			return
		}
		opts.Deck = d
	}

	game, err := klondike.NewGame(opts)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	gameID := NewGameID()
	if err := s.store.AddGame(NewHostedGame(gameID, game)); err != nil {
		s.log.WithError(err).Error("could not store game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.log.WithFields(logrus.Fields{
		"game_id":    gameID,
		"draw_count": game.Rules().DrawCount,
		"pass_limit": game.Rules().PassLimit,
	}).Info("new game")

	payload := NewGameRes{
		GameID: gameID,
		Rules:  game.Rules(),
		View:   protocol.ViewOf(game.State(), game.Turns()),
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payload)
}

// HandleGame handles GET /game/{id} for the current position and
// POST /game/{id}/move to play
func (s *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/game/")
	parts := strings.Split(rest, "/")
	gameID := parts[0]
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	hosted, ok := s.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		var out protocol.OutboundMessage
		hosted.Do(func(g *klondike.Game) error {
			out = protocol.OutboundMessage{
				GameID:  gameID,
				Command: protocol.State,
				View:    protocol.ViewOf(g.State(), g.Turns()),
			}
			return nil
		})
		w.Header().Add("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)

	case len(parts) == 2 && parts[1] == "move" && r.Method == http.MethodPost:
		var msg protocol.InboundMessage
		err := json.NewDecoder(r.Body).Decode(&msg)
		defer r.Body.Close()
		if err != nil {
			s.writeParseError(err, w)
			return
		}
		msg.GameID = gameID

		out := s.applyMessage(hosted, msg)

		w.Header().Add("Content-Type", "application/json")
		if out.Command == protocol.Error {
			w.WriteHeader(http.StatusBadRequest)
		}
		json.NewEncoder(w).Encode(out)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// applyMessage executes one client instruction against a hosted game and
// builds the reply. Refused moves leave the game untouched and come back
// with Command Error.
func (s *GameServer) applyMessage(hosted *HostedGame, msg protocol.InboundMessage) protocol.OutboundMessage {
	out := protocol.OutboundMessage{
		GameID:   msg.GameID,
		PlayerID: msg.PlayerID,
	}

	conceded := false
	err := hosted.Do(func(g *klondike.Game) error {
		switch msg.Command {
		case protocol.Turn:
			moves := g.State().LegalMoves()
			if msg.Decision < 0 || msg.Decision >= len(moves) {
				return fmt.Errorf("no move numbered %d", msg.Decision)
			}
			return g.TakeTurn(0, moves[msg.Decision])
		case protocol.Undo:
			return g.Undo()
		case protocol.Concede:
			conceded = true
			return nil
		default:
			return fmt.Errorf("unexpected command %s", msg.Command)
		}
	})

	hosted.Do(func(g *klondike.Game) error {
		out.View = protocol.ViewOf(g.State(), g.Turns())
		return nil
	})

	switch {
	case err != nil:
		out.Command = protocol.Error
		out.Error = err.Error()
	case conceded || out.View.Won:
		out.Command = protocol.GameOver
		s.store.RemoveGame(msg.GameID)
	default:
		out.Command = protocol.State
	}
	return out
}

// HandleWS upgrades to a websocket and plays the game over it: the server
// sends the position, the client answers with the number of its chosen
// move. The connection closes when the game is won or conceded.
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	hosted, ok := s.store.FindGame(gameID)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("could not upgrade to websocket")
		return
	}
	defer conn.Close()

	var out protocol.OutboundMessage
	hosted.Do(func(g *klondike.Game) error {
		out = protocol.OutboundMessage{
			GameID:  gameID,
			Command: protocol.State,
			View:    protocol.ViewOf(g.State(), g.Turns()),
		}
		return nil
	})

	for {
		if err := conn.WriteJSON(out); err != nil {
			s.log.WithError(err).Info("websocket write failed")
			return
		}
		if out.Command == protocol.GameOver {
			return
		}

		var msg protocol.InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			s.log.WithError(err).Info("websocket closed")
			return
		}
		msg.GameID = gameID

		out = s.applyMessage(hosted, msg)
	}
}

func (s *GameServer) writeParseError(err error, w http.ResponseWriter) {
	w.Header().Add("Content-Type", "text/plain")
	if err == io.EOF {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing body"))
		return
	}
	s.log.WithError(err).Info("bad request body")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(err.Error()))
}
