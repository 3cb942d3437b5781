package tavern

import (
	"thirstydragon-server/internal/rng"
)

// NextAliveOutcome is the result of a rotation lookup
type NextAliveOutcome int

// NextAliveOutcome constants
const (
	// NextAliveFound means another in-game player follows the given one
	NextAliveFound NextAliveOutcome = iota

	// NextAlivePlayerNotFound means the given player is not in the registry
	NextAlivePlayerNotFound

	// NextAliveOnlyOneLeft means no other in-game player exists
	NextAliveOnlyOneLeft
)

// SeatedPlayer pairs a player with the character they chose
type SeatedPlayer struct {
	ID        PlayerID
	Character *Character
}

// Registry holds every player in seating order. The order is fixed for the
// life of the game; players who bust or pass out stay seated but are skipped
// by the rotation.
type Registry struct {
	order   []PlayerID
	players map[PlayerID]*Player
}

func startingGold(playerCount int) int {
	switch {
	case playerCount <= 2:
		return 8
	case playerCount <= 6:
		return 10
	default:
		return 12
	}
}

// NewRegistry seats the given players in order and deals their starting hands
func NewRegistry(seated []SeatedPlayer, rand rng.Generator) *Registry {
	gold := startingGold(len(seated))

	r := &Registry{
		order:   make([]PlayerID, 0, len(seated)),
		players: make(map[PlayerID]*Player),
	}

	for _, sp := range seated {
		r.order = append(r.order, sp.ID)
		r.players[sp.ID] = newPlayer(sp.Character, gold, rand)
	}

	return r
}

// Player returns the player with the given ID, or nil
func (r *Registry) Player(id PlayerID) *Player {
	return r.players[id]
}

// PlayerIDs returns every seated player in order
func (r *Registry) PlayerIDs() []PlayerID {
	ids := make([]PlayerID, len(r.order))
	copy(ids, r.order)
	return ids
}

// AlivePlayerIDs returns the players still in the game, in seating order
func (r *Registry) AlivePlayerIDs() []PlayerID {
	ids := make([]PlayerID, 0, len(r.order))
	for _, id := range r.order {
		if !r.players[id].IsOutOfGame() {
			ids = append(ids, id)
		}
	}

	return ids
}

// NextAlive returns the next in-game player after id in seating order,
// wrapping around the table and skipping anyone who is out of the game
func (r *Registry) NextAlive(id PlayerID) (PlayerID, NextAliveOutcome) {
	start := -1
	for i, pid := range r.order {
		if pid == id {
			start = i
			break
		}
	}

	if start == -1 {
		return "", NextAlivePlayerNotFound
	}

	for i := 1; i < len(r.order); i++ {
		next := r.order[(start+i)%len(r.order)]
		if !r.players[next].IsOutOfGame() {
			return next, NextAliveFound
		}
	}

	return "", NextAliveOnlyOneLeft
}

// AliveAfter returns every in-game player other than id, starting with the
// player after id and continuing around the table
func (r *Registry) AliveAfter(id PlayerID) []PlayerID {
	start := -1
	for i, pid := range r.order {
		if pid == id {
			start = i
			break
		}
	}

	if start == -1 {
		return nil
	}

	ids := make([]PlayerID, 0, len(r.order)-1)
	for i := 1; i < len(r.order); i++ {
		next := r.order[(start+i)%len(r.order)]
		if !r.players[next].IsOutOfGame() {
			ids = append(ids, next)
		}
	}

	return ids
}

// Winner returns the last player standing, or false if two or more players
// are still in the game
func (r *Registry) Winner() (PlayerID, bool) {
	alive := r.AlivePlayerIDs()
	if len(alive) == 1 {
		return alive[0], true
	}

	return "", false
}
