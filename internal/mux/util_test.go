package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"thirstydragon-server/pkg/lobby"
	"thirstydragon-server/pkg/tavern"
)

func Test_writeGameError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		message    string
	}{
		{"game not found", lobby.ErrGameNotFound, 404, "game not found"},
		{"not signed in", lobby.ErrPlayerNotSignedIn, 401, "Unauthorized"},
		{"bad request", tavern.ErrNotYourTurn, 400, "it is not your turn"},
		{"internal", tavern.InternalError{}, 500, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeGameError(w, tt.err)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}
