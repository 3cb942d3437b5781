package mux

import (
	"net/http"

	"thirstydragon-server/internal/jwt"
)

type postSessionPayload struct {
	DisplayName string `json:"displayName"`
}

type postSessionResponse struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	Token       string `json:"token"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postSessionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		id, displayName := m.lobby.SignIn(pp.DisplayName)

		token, err := jwt.Sign(string(id))
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, postSessionResponse{
			PlayerID:    string(id),
			DisplayName: displayName,
			Token:       token,
		})
	}
}

func (m *Mux) deleteSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.lobby.SignOut(playerID(r)); err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK())
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

func statusOK() statusResponse {
	return statusResponse{Status: "OK"}
}
