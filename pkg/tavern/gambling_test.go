package tavern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGambling_Start(t *testing.T) {
	a := assert.New(t)

	r, ids := newTestRegistry(3)
	g := NewGambling()

	a.False(g.RoundInProgress())
	a.Equal(0, g.Pot())

	g.Start(ids[0], r)
	a.True(g.RoundInProgress())
	a.Equal(1, g.Pot())
	a.Equal(9, r.Player(ids[0]).Gold())
	a.Equal(ids, g.Participants())

	winner, ok := g.Winner()
	a.True(ok)
	a.Equal(ids[0], winner)
	a.True(g.IsTurn(ids[0]))

	// starting mid-round is a no-op
	g.Start(ids[1], r)
	a.Equal(1, g.Pot())
	a.Equal(10, r.Player(ids[1]).Gold())
}

func TestGambling_Ante(t *testing.T) {
	a := assert.New(t)

	r, ids := newTestRegistry(3)
	g := NewGambling()

	// no round, no ante
	g.Ante(ids[1], r)
	a.Equal(10, r.Player(ids[1]).Gold())

	g.Start(ids[0], r)
	g.Ante(ids[1], r)
	a.Equal(9, r.Player(ids[1]).Gold())
	a.Equal(2, g.Pot())

	// anteing does not move the turn
	a.True(g.IsTurn(ids[0]))

	g.Ante("stranger", r)
	a.Equal(2, g.Pot())
}

func TestGambling_TakeControlAndPass(t *testing.T) {
	a := assert.New(t)

	r, ids := newTestRegistry(3)
	g := NewGambling()
	turn := newTurnInfo(ids[0])
	turn.setPhase(PhaseAction)

	g.Start(ids[0], r)
	g.TakeControl(ids[1], true, r)

	winner, _ := g.Winner()
	a.Equal(ids[1], winner)
	a.True(g.NeedsCheating())
	a.True(g.IsTurn(ids[2]))

	g.Pass(r, turn)
	a.True(g.IsTurn(ids[0]))
	a.True(g.RoundInProgress())

	// the turn coming back around to the winner pays out the pot
	g.Pass(r, turn)
	a.False(g.RoundInProgress())
	a.Equal(11, r.Player(ids[1]).Gold())
	a.Equal(PhaseOrderDrinks, turn.Phase())
}

func TestGambling_Pass_skipsBustedPlayers(t *testing.T) {
	a := assert.New(t)

	r, ids := newTestRegistry(3)
	g := NewGambling()
	turn := newTurnInfo(ids[0])

	g.Start(ids[0], r)
	r.Player(ids[1]).AddGold(-10)

	g.Pass(r, turn)
	a.True(g.IsTurn(ids[2]))
}

func TestGambling_Leave(t *testing.T) {
	a := assert.New(t)

	r, ids := newTestRegistry(3)
	g := NewGambling()

	// leaving without a round is fine
	a.NoError(g.Leave(ids[1], r))

	g.Start(ids[0], r)
	a.NoError(g.Leave(ids[1], r))
	a.Equal([]PlayerID{ids[0], ids[2]}, g.Participants())
	a.False(g.IsParticipant(ids[1]))

	// the leaving player gives up the turn and control
	g.TakeControl(ids[2], false, r)
	a.True(g.IsTurn(ids[0]))
	a.NoError(g.Leave(ids[2], r))

	winner, _ := g.Winner()
	a.Equal(ids[0], winner)

	a.Equal(ErrLastPlayerCannotLeave, g.Leave(ids[0], r))
}
