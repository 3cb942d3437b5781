package tavern

const anteAmount = 1

// Gambling manages the gambling round, of which at most one exists at a time.
// A round begins when a gambling card is played, collects antes into a pot,
// and pays the pot to whoever holds control when play passes back to them.
type Gambling struct {
	round *gamblingRound
}

type gamblingRound struct {
	participants  []PlayerID
	currentTurn   PlayerID
	winner        PlayerID
	pot           int
	needsCheating bool
}

// NewGambling returns a Gambling with no active round
func NewGambling() *Gambling {
	return &Gambling{}
}

// RoundInProgress returns true if a gambling round is going
func (g *Gambling) RoundInProgress() bool {
	return g.round != nil
}

// IsTurn returns true if it's the given player's turn in the round
func (g *Gambling) IsTurn(id PlayerID) bool {
	return g.round != nil && g.round.currentTurn == id
}

// CurrentTurn returns the participant whose turn it is
func (g *Gambling) CurrentTurn() (PlayerID, bool) {
	if g.round == nil {
		return "", false
	}

	return g.round.currentTurn, true
}

// Pot returns the gold currently in the pot
func (g *Gambling) Pot() int {
	if g.round == nil {
		return 0
	}

	return g.round.pot
}

// Winner returns the player currently in control of the round
func (g *Gambling) Winner() (PlayerID, bool) {
	if g.round == nil {
		return "", false
	}

	return g.round.winner, true
}

// Participants returns the players still in the round
func (g *Gambling) Participants() []PlayerID {
	if g.round == nil {
		return nil
	}

	ids := make([]PlayerID, len(g.round.participants))
	copy(ids, g.round.participants)
	return ids
}

// IsParticipant returns true if the player is still in the round
func (g *Gambling) IsParticipant(id PlayerID) bool {
	if g.round == nil {
		return false
	}

	return g.round.indexOf(id) != -1
}

// NeedsCheating returns true if taking control now requires a cheating card
func (g *Gambling) NeedsCheating() bool {
	return g.round != nil && g.round.needsCheating
}

// Start begins a new round. The initiator pays one gold into the pot, every
// in-game player is dealt in, and the initiator holds both the turn and
// control. Starting is a no-op while a round is already going.
func (g *Gambling) Start(initiator PlayerID, registry *Registry) {
	if g.round != nil {
		return
	}

	player := registry.Player(initiator)
	if player == nil {
		return
	}

	player.AddGold(-anteAmount)

	g.round = &gamblingRound{
		participants: registry.AlivePlayerIDs(),
		currentTurn:  initiator,
		winner:       initiator,
		pot:          anteAmount,
	}
}

// Ante moves one gold from the player into the pot. Anteing does not move the
// turn. This silently no-ops when no round is going or the player isn't a
// participant, since the ante may have been queued up before the round ended.
func (g *Gambling) Ante(id PlayerID, registry *Registry) {
	if g.round == nil || g.round.indexOf(id) == -1 {
		return
	}

	player := registry.Player(id)
	if player == nil {
		return
	}

	player.AddGold(-anteAmount)
	g.round.pot += anteAmount
}

// TakeControl puts the player in control of the round and moves the turn to
// the participant after them. With needsCheating set, control can only be
// taken back with a cheating card.
func (g *Gambling) TakeControl(id PlayerID, needsCheating bool, registry *Registry) {
	if g.round == nil {
		return
	}

	g.round.winner = id
	g.round.needsCheating = needsCheating
	g.round.advanceFrom(id, registry)
}

// Pass moves the turn to the next participant. When the turn comes back
// around to the player in control, they collect the pot, the round ends, and
// the initiator's turn skips ahead to ordering drinks.
func (g *Gambling) Pass(registry *Registry, turn *TurnInfo) {
	if g.round == nil {
		return
	}

	g.round.advanceFrom(g.round.currentTurn, registry)

	if g.round.currentTurn == g.round.winner {
		if player := registry.Player(g.round.winner); player != nil {
			player.AddGold(g.round.pot)
		}

		g.round = nil
		turn.SetOrderDrinksPhase()
	}
}

// Leave removes the player from the round, so they no longer owe antes and
// cannot win the pot. The last participant is stuck in the round.
func (g *Gambling) Leave(id PlayerID, registry *Registry) error {
	if g.round == nil {
		return nil
	}

	i := g.round.indexOf(id)
	if i == -1 {
		return nil
	}

	if len(g.round.participants) < 2 {
		return ErrLastPlayerCannotLeave
	}

	if g.round.currentTurn == id {
		g.round.advanceFrom(id, registry)
	}

	g.round.participants = append(g.round.participants[:i], g.round.participants[i+1:]...)

	if g.round.winner == id {
		g.round.winner = g.round.currentTurn
	}

	return nil
}

func (r *gamblingRound) indexOf(id PlayerID) int {
	for i, pid := range r.participants {
		if pid == id {
			return i
		}
	}

	return -1
}

// advanceFrom moves the turn to the next participant after id who is still in
// the game, wrapping around the table
func (r *gamblingRound) advanceFrom(id PlayerID, registry *Registry) {
	start := r.indexOf(id)
	if start == -1 {
		return
	}

	for i := 1; i <= len(r.participants); i++ {
		next := r.participants[(start+i)%len(r.participants)]
		player := registry.Player(next)
		if next == r.winner || (player != nil && !player.IsOutOfGame()) {
			r.currentTurn = next
			return
		}
	}
}
