package tavern

import (
	"sync"

	"github.com/sirupsen/logrus"

	"thirstydragon-server/internal/rng"
)

// Game wraps a Logic behind a lock and handles the pre-game lobby phase:
// players joining, picking characters, and the owner starting the game. All
// methods are safe for concurrent use.
type Game struct {
	mu          sync.RWMutex
	logger      logrus.FieldLogger
	name        string
	owner       PlayerID
	rand        rng.Generator
	seats       []*seat
	logic       *Logic
	version     int64
	subscribers map[chan struct{}]bool
}

type seat struct {
	id          PlayerID
	displayName string
	character   *Character
}

// NewGame returns a game in the lobby phase with the owner already seated
func NewGame(logger logrus.FieldLogger, name string, owner PlayerID, ownerName string, rand rng.Generator) *Game {
	return &Game{
		logger:      logger,
		name:        name,
		owner:       owner,
		rand:        rand,
		seats:       []*seat{{id: owner, displayName: ownerName}},
		subscribers: make(map[chan struct{}]bool),
	}
}

// Name returns the display name of the game
func (g *Game) Name() string {
	return g.name
}

// HasStarted returns true once the owner has started the game
func (g *Game) HasStarted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.logic != nil
}

// Version returns a counter that bumps on every state change
func (g *Game) Version() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// Subscribe returns a channel that receives a value whenever the game state
// changes, and a function to unsubscribe
func (g *Game) Subscribe() (<-chan struct{}, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch := make(chan struct{}, 1)
	g.subscribers[ch] = true

	return ch, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.subscribers, ch)
	}
}

// notify must be called with the write lock held
func (g *Game) notify() {
	g.version++
	for ch := range g.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Join seats a new player. Joining is only possible before the game starts.
func (g *Game) Join(id PlayerID, displayName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logic != nil {
		return ErrGameStarted
	}

	if len(g.seats) >= MaxPlayers {
		return ErrGameFull
	}

	for _, s := range g.seats {
		if s.id == id {
			return nil
		}
	}

	g.seats = append(g.seats, &seat{id: id, displayName: displayName})
	g.notify()

	return nil
}

// Leave removes a player from the lobby. Players cannot leave a started
// game; they bust out instead.
func (g *Game) Leave(id PlayerID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logic != nil {
		return ErrGameStarted
	}

	for i, s := range g.seats {
		if s.id == id {
			g.seats = append(g.seats[:i], g.seats[i+1:]...)
			if g.owner == id && len(g.seats) > 0 {
				g.owner = g.seats[0].id
			}
			g.notify()
			return nil
		}
	}

	return ErrPlayerNotFound
}

// IsEmpty returns true if nobody is seated
func (g *Game) IsEmpty() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.seats) == 0
}

// SelectCharacter picks the character a player will play as
func (g *Game) SelectCharacter(id PlayerID, characterName string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logic != nil {
		return ErrGameStarted
	}

	character := CharacterByName(characterName)
	if character == nil {
		return ErrUnknownCharacter
	}

	for _, s := range g.seats {
		if s.id == id {
			s.character = character
			g.notify()
			return nil
		}
	}

	return ErrPlayerNotFound
}

// Start deals the game. Only the owner may start, every player needs a
// character, and the table needs at least two players.
func (g *Game) Start(id PlayerID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logic != nil {
		return ErrGameStarted
	}

	if id != g.owner {
		return ErrNotGameOwner
	}

	if len(g.seats) < MinPlayers {
		return ErrNotEnoughPlayers
	}

	seated := make([]SeatedPlayer, 0, len(g.seats))
	for _, s := range g.seats {
		if s.character == nil {
			return ErrCharacterNotSelected
		}

		seated = append(seated, SeatedPlayer{ID: s.id, Character: s.character})
	}

	logic, err := NewLogic(g.logger, seated, g.rand)
	if err != nil {
		return err
	}

	g.logic = logic
	g.logger.WithFields(logrus.Fields{
		"game":    g.name,
		"players": len(seated),
	}).Info("game started")
	g.notify()

	return nil
}

// PlayCard plays the card at cardIndex in the player's hand
func (g *Game) PlayCard(id PlayerID, cardIndex int, target PlayerID) error {
	return g.mutate(func() error {
		return g.logic.PlayCard(id, cardIndex, target)
	})
}

// Pass declines whatever is waiting on the player
func (g *Game) Pass(id PlayerID) error {
	return g.mutate(func() error {
		return g.logic.Pass(id)
	})
}

// DiscardAndDraw swaps out the player's cards at the given hand indexes
func (g *Game) DiscardAndDraw(id PlayerID, cardIndexes []int) error {
	return g.mutate(func() error {
		return g.logic.DiscardAndDraw(id, cardIndexes)
	})
}

// OrderDrink sends a drink to another player
func (g *Game) OrderDrink(id, target PlayerID) error {
	return g.mutate(func() error {
		return g.logic.OrderDrink(id, target)
	})
}

func (g *Game) mutate(action func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.logic == nil {
		return ErrGameNotStarted
	}

	if err := action(); err != nil {
		return err
	}

	g.notify()
	return nil
}

// LobbyView is the pre-game view of a game
type LobbyView struct {
	Name    string          `json:"name"`
	Owner   PlayerID        `json:"owner"`
	Started bool            `json:"started"`
	Seats   []LobbySeatView `json:"seats"`
}

// LobbySeatView is one seated player in the lobby
type LobbySeatView struct {
	ID          PlayerID `json:"id"`
	DisplayName string   `json:"displayName"`
	Character   string   `json:"character,omitempty"`
}

// View returns the given player's view of the game. Before the game starts
// the view only carries the seating.
func (g *Game) View(id PlayerID) (*LobbyView, *GameView) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	lobby := &LobbyView{
		Name:    g.name,
		Owner:   g.owner,
		Started: g.logic != nil,
	}

	names := make(map[PlayerID]string, len(g.seats))
	for _, s := range g.seats {
		names[s.id] = s.displayName

		sv := LobbySeatView{ID: s.id, DisplayName: s.displayName}
		if s.character != nil {
			sv.Character = s.character.Name
		}

		lobby.Seats = append(lobby.Seats, sv)
	}

	if g.logic == nil {
		return lobby, nil
	}

	return lobby, g.logic.View(id, names)
}
