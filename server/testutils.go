package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/dekarrin/playingsim/deck"
	utils "github.com/dekarrin/playingsim/internal"
	"github.com/dekarrin/playingsim/klondike"
	"github.com/dekarrin/playingsim/protocol"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func newBasicServer() *GameServer {
	return NewServer(NewInMemoryGameStore(), testLogger())
}

// newServerWithGame returns a GameServer already hosting a game dealt from
// an unshuffled deck, plus its id
func newServerWithGame(t *testing.T) (*GameServer, string) {
	t.Helper()

	game, err := klondike.NewGame(klondike.Options{Deck: deck.New()})
	utils.AssertNoError(t, err)

	gameID := "HOSTED"
	store := NewInMemoryGameStore()
	utils.AssertNoError(t, store.AddGame(NewHostedGame(gameID, game)))

	return NewServer(store, testLogger()), gameID
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newMoveRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/move", bytes.NewBuffer(data))
	return request
}

func jsonDecode(body *bytes.Buffer, v interface{}) error {
	return json.NewDecoder(body).Decode(v)
}

func decodeOutbound(t *testing.T, body *bytes.Buffer) protocol.OutboundMessage {
	t.Helper()

	var got protocol.OutboundMessage
	err := json.NewDecoder(body).Decode(&got)
	utils.AssertNoError(t, err)
	return got
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		var body []byte
		if resp != nil {
			body, _ = ioutil.ReadAll(resp.Body)
		}
		t.Fatalf("could not open a ws connection on %s: %s, %v", url, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	game, err := klondike.NewGame(klondike.Options{Deck: deck.New()})
	utils.AssertNoError(t, err)

	gameID := "HOSTED"
	store := NewInMemoryGameStore()
	utils.AssertNoError(t, store.AddGame(NewHostedGame(gameID, game)))

	return httptest.NewServer(NewServer(store, testLogger())), gameID
}
