package mux

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"thirstydragon-server/pkg/tavern"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

type wsAction struct {
	Action      string `json:"action"`
	CardIndex   int    `json:"cardIndex"`
	CardIndexes []int  `json:"cardIndexes"`
	Target      string `json:"target"`
}

type wsError struct {
	Error string `json:"error"`
}

// getGameWS upgrades the connection and streams the player's view of their
// game. Every state change pushes a fresh view; actions may also arrive over
// the socket.
func (m *Mux) getGameWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		id := playerID(r)
		game, err := m.lobby.Game(id)
		if err != nil {
			writeGameError(w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		changes, unsubscribe := game.Subscribe()
		done := make(chan struct{})
		errs := make(chan string, 4)
		defer func() {
			unsubscribe()
			close(done)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(conn, game, id, changes, errs, done)
		m.webSocketReadLoop(conn, game, id, errs)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, game *tavern.Game, id tavern.PlayerID, changes <-chan struct{}, errs <-chan string, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	writeView := func() bool {
		lobbyView, gameView := game.View(id)
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(gameViewResponse{Lobby: lobbyView, Game: gameView}); err != nil {
			logrus.WithError(err).WithField("player", id).Error("could not write view")
			return false
		}

		return true
	}

	if !writeView() {
		return
	}

	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-changes:
			if !writeView() {
				return
			}
		case msg := <-errs:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(wsError{Error: msg}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, game *tavern.Game, id tavern.PlayerID, errs chan<- string) {
	for {
		var msg wsAction
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Error("could not read message")
			}

			return
		}

		if err := m.handleWSAction(game, id, msg); err != nil {
			select {
			case errs <- err.Error():
			default:
			}
		}
	}
}

func (m *Mux) handleWSAction(game *tavern.Game, id tavern.PlayerID, msg wsAction) error {
	switch msg.Action {
	case "play":
		return game.PlayCard(id, msg.CardIndex, tavern.PlayerID(msg.Target))
	case "pass":
		return game.Pass(id)
	case "discard":
		return game.DiscardAndDraw(id, msg.CardIndexes)
	case "orderDrink":
		return game.OrderDrink(id, tavern.PlayerID(msg.Target))
	default:
		return tavern.ErrCannotPlayCard
	}
}
