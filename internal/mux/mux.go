package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"thirstydragon-server/internal/jwt"
	"thirstydragon-server/internal/rng"
	"thirstydragon-server/pkg/lobby"
	"thirstydragon-server/pkg/tavern"
)

type ctxKey int

const ctxPlayerIDKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	lobby   *lobby.Lobby

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		lobby:   lobby.New(logrus.StandardLogger(), rng.Crypto{}),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/characters").Handler(this.getCharacters())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodDelete).Path("/session").Handler(this.deleteSession())

		r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
		r.Methods(http.MethodGet).Path("/game").Handler(this.getGame())
		r.Methods(http.MethodGet).Path("/game/ws").Handler(this.getGameWS())
		r.Methods(http.MethodPost).Path("/game/join").Handler(this.postGameJoin())
		r.Methods(http.MethodPost).Path("/game/leave").Handler(this.postGameLeave())
		r.Methods(http.MethodPost).Path("/game/character").Handler(this.postGameCharacter())
		r.Methods(http.MethodPost).Path("/game/start").Handler(this.postGameStart())
		r.Methods(http.MethodPost).Path("/game/play").Handler(this.postGamePlay())
		r.Methods(http.MethodPost).Path("/game/discard").Handler(this.postGameDiscard())
		r.Methods(http.MethodPost).Path("/game/order-drink").Handler(this.postGameOrderDrink())
		r.Methods(http.MethodPost).Path("/game/pass").Handler(this.postGamePass())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidPlayerID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		playerID := tavern.PlayerID(id)
		if _, ok := m.lobby.DisplayName(playerID); !ok {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerIDKey, playerID)
		w.Header().Set("ThirstyDragon-PlayerID", id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func playerID(r *http.Request) tavern.PlayerID {
	return r.Context().Value(ctxPlayerIDKey).(tavern.PlayerID)
}
