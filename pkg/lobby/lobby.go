package lobby

import (
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"thirstydragon-server/internal/rng"
	"thirstydragon-server/internal/util"
	"thirstydragon-server/pkg/tavern"
	"thirstydragon-server/pkg/token"
)

// join codes are short enough to read over the table
const joinCodeLength = 6

// ErrGameNotFound happens when a join code doesn't match a game
var ErrGameNotFound = errors.New("game not found")

// ErrPlayerNotSignedIn happens when a request carries an unknown player ID
var ErrPlayerNotSignedIn = errors.New("player is not signed in")

// ErrAlreadyInGame happens when a player in a game tries to enter another one
var ErrAlreadyInGame = errors.New("player is already in a game")

// ErrNotInGame happens when a game action arrives from a player who isn't in one
var ErrNotInGame = errors.New("player is not in a game")

// Lobby tracks signed-in players and the games they're in. Games are keyed by
// join code. The lobby lock only guards the maps; each game carries its own
// lock.
type Lobby struct {
	mu          sync.RWMutex
	logger      logrus.FieldLogger
	rand        rng.Generator
	games       map[string]*tavern.Game
	players     map[tavern.PlayerID]string
	playerGames map[tavern.PlayerID]string
}

// New returns an empty lobby
func New(logger logrus.FieldLogger, rand rng.Generator) *Lobby {
	return &Lobby{
		logger:      logger,
		rand:        rand,
		games:       make(map[string]*tavern.Game),
		players:     make(map[tavern.PlayerID]string),
		playerGames: make(map[tavern.PlayerID]string),
	}
}

// SignIn registers a player and returns their ID. A blank display name gets
// a random one.
func (l *Lobby) SignIn(displayName string) (tavern.PlayerID, string) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = util.GetRandomName()
	}

	id := tavern.NewPlayerID()

	l.mu.Lock()
	l.players[id] = displayName
	l.mu.Unlock()

	l.logger.WithFields(logrus.Fields{
		"player":      id,
		"displayName": displayName,
	}).Info("player signed in")

	return id, displayName
}

// SignOut forgets the player, pulling them out of their game first
func (l *Lobby) SignOut(id tavern.PlayerID) error {
	if err := l.LeaveGame(id); err != nil && !errors.Is(err, ErrNotInGame) {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.players[id]; !ok {
		return ErrPlayerNotSignedIn
	}

	delete(l.players, id)
	return nil
}

// DisplayName returns the player's display name
func (l *Lobby) DisplayName(id tavern.PlayerID) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	name, ok := l.players[id]
	return name, ok
}

// CreateGame opens a new game owned by the player and returns its join code
func (l *Lobby) CreateGame(id tavern.PlayerID, name string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	displayName, ok := l.players[id]
	if !ok {
		return "", ErrPlayerNotSignedIn
	}

	if _, ok := l.playerGames[id]; ok {
		return "", ErrAlreadyInGame
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = displayName + "'s table"
	}

	code, err := l.newJoinCode()
	if err != nil {
		return "", err
	}

	game := tavern.NewGame(l.logger.WithField("game", code), name, id, displayName, l.rand)
	l.games[code] = game
	l.playerGames[id] = code

	l.logger.WithFields(logrus.Fields{
		"player": id,
		"game":   code,
	}).Info("game created")

	return code, nil
}

func (l *Lobby) newJoinCode() (string, error) {
	for {
		code, err := token.Generate(joinCodeLength)
		if err != nil {
			return "", err
		}

		if _, exists := l.games[code]; !exists {
			return code, nil
		}
	}
}

// JoinGame seats the player at the game with the given join code
func (l *Lobby) JoinGame(id tavern.PlayerID, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	displayName, ok := l.players[id]
	if !ok {
		return ErrPlayerNotSignedIn
	}

	if current, ok := l.playerGames[id]; ok {
		if current == code {
			return nil
		}

		return ErrAlreadyInGame
	}

	game, ok := l.games[code]
	if !ok {
		return ErrGameNotFound
	}

	if err := game.Join(id, displayName); err != nil {
		return err
	}

	l.playerGames[id] = code
	return nil
}

// LeaveGame pulls the player out of their game. The last player out closes
// the game.
func (l *Lobby) LeaveGame(id tavern.PlayerID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	code, ok := l.playerGames[id]
	if !ok {
		return ErrNotInGame
	}

	game := l.games[code]
	delete(l.playerGames, id)

	if game == nil {
		return nil
	}

	if err := game.Leave(id); err != nil && !errors.Is(err, tavern.ErrGameStarted) {
		return err
	}

	if game.IsEmpty() {
		delete(l.games, code)
		l.logger.WithField("game", code).Info("game closed")
	}

	return nil
}

// Game returns the game the player is in
func (l *Lobby) Game(id tavern.PlayerID) (*tavern.Game, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.players[id]; !ok {
		return nil, ErrPlayerNotSignedIn
	}

	code, ok := l.playerGames[id]
	if !ok {
		return nil, ErrNotInGame
	}

	game, ok := l.games[code]
	if !ok {
		return nil, ErrGameNotFound
	}

	return game, nil
}
