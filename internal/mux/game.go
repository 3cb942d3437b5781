package mux

import (
	"errors"
	"net/http"
	"regexp"

	"thirstydragon-server/pkg/tavern"
)

type postGamePayload struct {
	Name string `json:"name"`
}

type postGameResponse struct {
	Code string `json:"code"`
}

var wordChar = regexp.MustCompile(`\w`)

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Name != "" && (!wordChar.MatchString(pp.Name) || len(pp.Name) > 40) {
			writeJSONError(w, http.StatusBadRequest, errors.New("name must be at most 40 characters"))
			return
		}

		code, err := m.lobby.CreateGame(playerID(r), pp.Name)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, postGameResponse{Code: code})
	}
}

type postGameJoinPayload struct {
	Code string `json:"code"`
}

func (m *Mux) postGameJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGameJoinPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if err := m.lobby.JoinGame(playerID(r), pp.Code); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postGameLeave() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.lobby.LeaveGame(playerID(r)); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

type postGameCharacterPayload struct {
	Character string `json:"character"`
}

func (m *Mux) postGameCharacter() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGameCharacterPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.SelectCharacter(playerID(r), pp.Character); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postGameStart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.Start(playerID(r)); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

type gameViewResponse struct {
	Lobby *tavern.LobbyView `json:"lobby"`
	Game  *tavern.GameView  `json:"game,omitempty"`
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		lobbyView, gameView := game.View(playerID(r))
		writeJSON(w, http.StatusOK, gameViewResponse{
			Lobby: lobbyView,
			Game:  gameView,
		})
	}
}

type postGamePlayPayload struct {
	CardIndex int    `json:"cardIndex"`
	Target    string `json:"target"`
}

func (m *Mux) postGamePlay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGamePlayPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.PlayCard(playerID(r), pp.CardIndex, tavern.PlayerID(pp.Target)); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

type postGameDiscardPayload struct {
	CardIndexes []int `json:"cardIndexes"`
}

func (m *Mux) postGameDiscard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGameDiscardPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.DiscardAndDraw(playerID(r), pp.CardIndexes); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

type postGameOrderDrinkPayload struct {
	Target string `json:"target"`
}

func (m *Mux) postGameOrderDrink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postGameOrderDrinkPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.OrderDrink(playerID(r), tavern.PlayerID(pp.Target)); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

func (m *Mux) postGamePass() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := m.lobby.Game(playerID(r))
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.Pass(playerID(r)); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

type characterResponse struct {
	Name      string `json:"name"`
	Race      string `json:"race"`
	Fortitude int    `json:"fortitude"`
	DeckSize  int    `json:"deckSize"`
}

func (m *Mux) getCharacters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characters := tavern.Characters()
		resp := make([]characterResponse, 0, len(characters))
		for _, c := range characters {
			resp = append(resp, characterResponse{
				Name:      c.Name,
				Race:      string(c.Race),
				Fortitude: c.Fortitude,
				DeckSize:  len(c.Deck()),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
