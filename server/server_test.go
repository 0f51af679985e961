package server

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/royalmatch/casino"
	utils "github.com/royalmatch/casino/internal"
)

func TestServerPing(t *testing.T) {
	response := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/", nil)

	server := NewServer(newBasicStore())
	server.ServeHTTP(response, request)

	assertStatus(t, response.Code, http.StatusOK)
}

func TestServerPOSTNewGame(t *testing.T) {
	t.Run("succeeds and returns expected data", func(t *testing.T) {
		data := mustMakeJson(t, NewGameReq{"Elton"})

		response := httptest.NewRecorder()
		request := newCreateGameRequest(data)

		server := NewServer(newBasicStore())
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusCreated)
		assertPendingGameResponse(t, response.Body, "Elton")
	})

	t.Run("returns 400 if the body is missing", func(t *testing.T) {
		response := httptest.NewRecorder()
		request := newCreateGameRequest([]byte{})

		server := NewServer(newBasicStore())
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("returns 400 if the player's name is missing", func(t *testing.T) {
		data := mustMakeJson(t, NewGameReq{})

		response := httptest.NewRecorder()
		request := newCreateGameRequest(data)

		server := NewServer(newBasicStore())
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("does not match on GET /new", func(t *testing.T) {
		response := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/new", nil)

		server := NewServer(nil)
		server.ServeHTTP(response, request)

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}

func TestServerGETGame(t *testing.T) {
	t.Run("a pending game reports as pending", func(t *testing.T) {
		server, gameID := newServerWithInactiveGame(t, casino.SomePlayers())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(gameID))

		assertStatus(t, response.Code, http.StatusOK)

		bodyBytes, err := ioutil.ReadAll(response.Body)
		utils.AssertNoError(t, err)

		var got GetGameRes
		utils.AssertNoError(t, json.Unmarshal(bodyBytes, &got))
		utils.AssertEqual(t, got.Status, "pending")
		utils.AssertEqual(t, got.GameID, gameID)
	})

	t.Run("a started game reports as active", func(t *testing.T) {
		gameID := "some-active-id"
		store := casino.NewInMemoryGameStore()
		game, err := casino.NewGameEngine(casino.GameEngineOpts{
			GameID:  gameID,
			Players: casino.SomePlayers(),
			Game:    casino.NewCasino(casino.CasinoOpts{}),
			Store:   store,
		})
		utils.AssertNoError(t, err)
		utils.AssertNoError(t, store.AddInactiveGame(game))
		utils.AssertNoError(t, game.Start())

		server := NewServer(store)

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest(gameID))

		assertStatus(t, response.Code, http.StatusOK)

		bodyBytes, err := ioutil.ReadAll(response.Body)
		utils.AssertNoError(t, err)

		var got GetGameRes
		utils.AssertNoError(t, json.Unmarshal(bodyBytes, &got))
		utils.AssertEqual(t, got.Status, "active")
	})

	t.Run("an unknown game id returns 404", func(t *testing.T) {
		server := NewServer(newBasicStore())

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newGetGameRequest("NOSUCH"))

		assertStatus(t, response.Code, http.StatusNotFound)
	})
}

func TestServerJoinGame(t *testing.T) {
	t.Run("POST /join returns 200 for an existing game", func(t *testing.T) {
		server, pendingID := newServerWithInactiveGame(t, casino.SomePlayers())

		data := mustMakeJson(t, JoinGameReq{pendingID, "Heloise"})

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newJoinGameRequest(data))

		assertStatus(t, response.Code, http.StatusOK)
		assertPendingGameResponse(t, response.Body, "Heloise")
	})

	t.Run("POST /join returns 400 if the game id is missing", func(t *testing.T) {
		server, _ := newServerWithInactiveGame(t, casino.SomePlayers())

		data := mustMakeJson(t, JoinGameReq{Name: "Heloise"})

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newJoinGameRequest(data))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})

	t.Run("POST /join returns 400 for an unknown game", func(t *testing.T) {
		server := NewServer(newBasicStore())

		data := mustMakeJson(t, JoinGameReq{"NOSUCH", "Heloise"})

		response := httptest.NewRecorder()
		server.ServeHTTP(response, newJoinGameRequest(data))

		assertStatus(t, response.Code, http.StatusBadRequest)
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("falls back to defaults", func(t *testing.T) {
		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":8000")
		utils.AssertEqual(t, cfg.ReadTimeout, 15*time.Second)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		os.Setenv("CASINO_ADDR", ":9999")
		defer os.Unsetenv("CASINO_ADDR")

		cfg, err := ConfigFromEnv()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Addr, ":9999")
	})
}
