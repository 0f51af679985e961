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

	"github.com/royalmatch/casino"
	utils "github.com/royalmatch/casino/internal"
	"github.com/royalmatch/casino/protocol"
)

func newBasicStore() *casino.InMemoryGameStore {
	return casino.NewInMemoryGameStore()
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

func newJoinGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

// newServerWithInactiveGame returns a GameServer holding a pending
// game with two pending players
func newServerWithInactiveGame(t *testing.T, ps casino.Players) (*GameServer, string) {
	t.Helper()
	gameID := "some-pending-id"
	game, err := casino.NewGameEngine(casino.GameEngineOpts{
		GameID:    gameID,
		CreatorID: "hersha-1",
		Players:   ps,
		Game:      casino.NewCasino(casino.CasinoOpts{}),
	})
	if err != nil {
		t.Fatal(err)
	}

	store := casino.NewTestGameStore(
		nil,
		map[string]casino.GameEngine{gameID: game},
		map[string][]protocol.PlayerInfo{gameID: {
			{PlayerID: "hersha-1", Name: "Hersha"},
			{PlayerID: "pending-player-id", Name: "Penelope"},
		}},
	)

	return NewServer(store), gameID
}

// newTestServerWithInactiveGame starts an httptest.Server around a
// pending game whose hub is already listening. The caller must close
// the server.
func newTestServerWithInactiveGame(t *testing.T, info []protocol.PlayerInfo) (*httptest.Server, string) {
	t.Helper()
	gameID := "some-pending-id"
	store := casino.NewTestGameStore(
		nil,
		nil,
		map[string][]protocol.PlayerInfo{gameID: info},
	)

	game, err := casino.NewGameEngine(casino.GameEngineOpts{
		GameID:    gameID,
		CreatorID: info[0].PlayerID,
		Game:      casino.NewCasino(casino.CasinoOpts{}),
		Store:     store,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.AddInactiveGame(game); err != nil {
		t.Fatal(err)
	}

	go game.Listen()

	return httptest.NewServer(NewServer(store)), gameID
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertPendingGameResponse(t *testing.T, body *bytes.Buffer, want string) {
	t.Helper()
	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	var got PendingGameRes
	err = json.Unmarshal(bodyBytes, &got)
	if err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
	if got.Name != want {
		t.Errorf("got %s, want %s", got.Name, want)
	}
	if len(got.GameID) == 0 {
		t.Error("expected a game id")
	}
	if len(got.PlayerID) == 0 {
		t.Error("expected a player id")
	}
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		status := ""
		if resp != nil {
			body, _ := ioutil.ReadAll(resp.Body)
			status = string(body)
		}
		t.Fatalf("could not open a ws connection on %s: %s %v", url, status, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") +
		"/ws?game_id=" + gameID + "&player_id=" + playerID
}
