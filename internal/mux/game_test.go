package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"thirstydragon-server/pkg/tavern"
)

func TestGameLifecycle(t *testing.T) {
	setupJWT()
	a := assert.New(t)

	m := NewMux("")
	ts := httptest.NewServer(m)
	defer ts.Close()

	// sign in over the API
	var session postSessionResponse
	assertPost(t, ts, "/session", postSessionPayload{DisplayName: "Alice"}, &session, 201)
	a.Equal("Alice", session.DisplayName)
	a.NotEmpty(session.Token)
	aliceToken := session.Token

	assertPost(t, ts, "/session", postSessionPayload{}, &session, 201)
	a.NotEmpty(session.DisplayName) // blank names get a random one
	bobToken := session.Token
	bobID := session.PlayerID

	// create and join
	var created postGameResponse
	assertPost(t, ts, "/game", postGamePayload{Name: "the snug"}, &created, 201, aliceToken)
	a.NotEmpty(created.Code)

	var errObj errorResponse
	assertPost(t, ts, "/game/join", postGameJoinPayload{Code: "nope"}, &errObj, 404, bobToken)
	assertPost(t, ts, "/game/join", postGameJoinPayload{Code: created.Code}, nil, 200, bobToken)

	// starting requires characters, and only the owner can start
	assertPost(t, ts, "/game/start", nil, &errObj, 400, bobToken)
	a.Equal(tavern.ErrNotGameOwner.Error(), errObj.Message)

	assertPost(t, ts, "/game/start", nil, &errObj, 400, aliceToken)
	a.Equal(tavern.ErrCharacterNotSelected.Error(), errObj.Message)

	assertPost(t, ts, "/game/character", postGameCharacterPayload{Character: "Nobody"}, &errObj, 400, aliceToken)
	assertPost(t, ts, "/game/character", postGameCharacterPayload{Character: "Fiona"}, nil, 200, aliceToken)
	assertPost(t, ts, "/game/character", postGameCharacterPayload{Character: "Gerki"}, nil, 200, bobToken)
	assertPost(t, ts, "/game/start", nil, nil, 200, aliceToken)

	// the game is dealt
	var view gameViewResponse
	assertGet(t, ts, "/game", &view, 200, aliceToken)
	a.True(view.Lobby.Started)
	a.NotNil(view.Game)
	a.Len(view.Game.Players, 2)
	a.Len(view.Game.Hand, 7)
	a.Equal(tavern.PhaseDiscardAndDraw, view.Game.Phase)
	a.Equal(8, view.Game.Players[0].Gold)

	// other players' hands stay hidden
	assertGet(t, ts, "/game", &view, 200, bobToken)
	a.Equal(7, view.Game.Players[0].HandSize)

	// acting out of turn fails; the first seat has the first turn
	firstTurn := view.Game.CurrentTurn
	if string(firstTurn) == bobID {
		t.Fatalf("expected the owner to have the first turn")
	}

	assertPost(t, ts, "/game/discard", postGameDiscardPayload{}, &errObj, 400, bobToken)
	a.Equal(tavern.ErrNotYourTurn.Error(), errObj.Message)

	// the current player can keep their hand and move to the action phase
	assertPost(t, ts, "/game/discard", postGameDiscardPayload{}, nil, 200, aliceToken)
	assertGet(t, ts, "/game", &view, 200, aliceToken)
	a.Equal(tavern.PhaseAction, view.Game.Phase)
	a.True(view.Game.CanPass)

	// joining a started game fails
	assertPost(t, ts, "/session", postSessionPayload{DisplayName: "Carol"}, &session, 201)
	assertPost(t, ts, "/game/join", postGameJoinPayload{Code: created.Code}, &errObj, 400, session.Token)
	a.Equal(tavern.ErrGameStarted.Error(), errObj.Message)
}

func TestGetCharacters(t *testing.T) {
	setupJWT()

	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var characters []characterResponse
	assertGet(t, ts, "/characters", &characters, 200)
	assert.Len(t, characters, 4)
	assert.Equal(t, "Fiona", characters[0].Name)
	assert.Equal(t, 40, characters[0].DeckSize)
}
