package tavern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGamblingImIn_cheatStealsThePot(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, gamblingImInCard())
	setHand(l, bob, gamblingCheatCard("I just found this fifth ace"))

	// alice opens the round and bob is about to ante
	a.NoError(l.PlayCard(alice, 0, ""))
	a.Equal(7, l.registry.Player(alice).Gold())
	a.Equal(1, l.gambling.Pot())
	a.True(l.interrupts.IsTurnToInterrupt(bob))

	// bob cheats instead of paying
	a.NoError(l.PlayCard(bob, 0, ""))
	a.True(l.interrupts.IsTurnToInterrupt(alice))
	a.NoError(l.Pass(alice))

	a.False(l.interrupts.InProgress())
	a.True(l.gambling.RoundInProgress())
	a.True(l.gambling.NeedsCheating())

	winner, _ := l.gambling.Winner()
	a.Equal(bob, winner)
	a.Equal(8, l.registry.Player(bob).Gold())
	a.Equal(1, l.gambling.Pot())

	// alice has nothing to answer with, so bob collects
	a.True(l.gambling.IsTurn(alice))
	a.NoError(l.Pass(alice))

	a.False(l.gambling.RoundInProgress())
	a.Equal(7, l.registry.Player(alice).Gold())
	a.Equal(9, l.registry.Player(bob).Gold())
	a.Equal(PhaseOrderDrinks, l.turn.Phase())

	// the spent cards went back to their owners' discard piles
	a.Equal(1, l.registry.Player(alice).DiscardPileSize())
	a.Equal(1, l.registry.Player(bob).DiscardPileSize())
}

func TestIRaise_everyParticipantAntes(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, gamblingImInCard())
	setHand(l, bob, iRaiseCard())

	a.NoError(l.PlayCard(alice, 0, ""))

	// bob lets the ante through, which also passes his gambling turn on
	a.NoError(l.Pass(bob))
	a.Equal(7, l.registry.Player(alice).Gold())
	a.Equal(7, l.registry.Player(bob).Gold())
	a.Equal(2, l.gambling.Pot())
	a.True(l.gambling.IsTurn(bob))

	// bob raises; every participant antes again, bob first
	a.NoError(l.PlayCard(bob, 0, ""))
	a.True(l.interrupts.IsTurnToInterrupt(bob))
	a.NoError(l.Pass(bob))
	a.Equal(6, l.registry.Player(bob).Gold())
	a.Equal(3, l.gambling.Pot())

	a.True(l.interrupts.IsTurnToInterrupt(alice))
	a.NoError(l.Pass(alice))
	a.Equal(6, l.registry.Player(alice).Gold())
	a.Equal(4, l.gambling.Pot())

	// the raise put bob in control
	winner, _ := l.gambling.Winner()
	a.Equal(bob, winner)
	a.True(l.gambling.IsTurn(alice))

	a.NoError(l.Pass(alice))
	a.False(l.gambling.RoundInProgress())
	a.Equal(6, l.registry.Player(alice).Gold())
	a.Equal(10, l.registry.Player(bob).Gold())
	a.Equal(PhaseOrderDrinks, l.turn.Phase())
}

func TestLeaveGamblingRound_dodgesTheAnte(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 3)
	alice, bob, carol := ids[0], ids[1], ids[2]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, gamblingImInCard())
	setHand(l, bob, leaveGamblingRoundCard("Time to slip away"))

	a.NoError(l.PlayCard(alice, 0, ""))
	a.NoError(l.PlayCard(bob, 0, ""))
	a.NoError(l.Pass(carol))
	a.NoError(l.Pass(alice))

	// bob is out of the round and never paid
	a.False(l.gambling.IsParticipant(bob))
	a.Equal(10, l.registry.Player(bob).Gold())
	a.Equal(1, l.gambling.Pot())

	// the round carries on without him
	a.NoError(l.Pass(alice))
	a.True(l.gambling.IsTurn(carol))
	a.NoError(l.Pass(carol))

	a.False(l.gambling.RoundInProgress())
	a.Equal(10, l.registry.Player(alice).Gold())
	a.Equal(10, l.registry.Player(carol).Gold())
}

func TestChangeFortitude_landsWhenNobodyObjects(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, changeFortitudeCard("A round of sparring, loser drinks!", -2))

	a.NoError(l.PlayCard(alice, 0, bob))
	a.True(l.interrupts.IsTurnToInterrupt(bob))

	a.NoError(l.Pass(bob))
	a.Equal(18, l.registry.Player(bob).Fortitude())

	// playing the action card used up alice's action phase
	a.Equal(PhaseOrderDrinks, l.turn.Phase())
}

func TestChangeFortitude_ignoredByArmor(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, changeFortitudeCard("A round of sparring, loser drinks!", -2))
	setHand(l, bob, ignoreDirectedCard("Luckily, I was wearing my armor"))

	a.NoError(l.PlayCard(alice, 0, bob))
	a.NoError(l.PlayCard(bob, 0, ""))
	a.NoError(l.Pass(alice))

	a.Equal(20, l.registry.Player(bob).Fortitude())
	a.Equal(PhaseOrderDrinks, l.turn.Phase())
}

func TestIDontThinkSo_negatesTheArmor(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, changeFortitudeCard("A round of sparring, loser drinks!", -2), iDontThinkSoCard())
	setHand(l, bob, ignoreDirectedCard("Luckily, I was wearing my armor"))

	a.NoError(l.PlayCard(alice, 0, bob))
	a.NoError(l.PlayCard(bob, 0, ""))
	a.NoError(l.PlayCard(alice, 0, ""))
	a.NoError(l.Pass(bob))

	// the armor was negated, so the sparring landed after all
	a.Equal(18, l.registry.Player(bob).Fortitude())
	a.Equal(PhaseOrderDrinks, l.turn.Phase())
	a.Equal(2, l.registry.Player(alice).DiscardPileSize())
	a.Equal(1, l.registry.Player(bob).DiscardPileSize())
}

func TestIDontThinkSo_negatesARootForEveryone(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 3)
	alice, bob, carol := ids[0], ids[1], ids[2]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, changeAllOthersFortitudeCard("Bar brawl!", -1))
	setHand(l, bob, iDontThinkSoCard())

	a.NoError(l.PlayCard(alice, 0, ""))
	a.True(l.interrupts.IsTurnToInterrupt(bob))

	// bob negates the brawl, and carol never even gets asked
	a.NoError(l.PlayCard(bob, 0, ""))
	a.False(l.interrupts.InProgress())
	a.Equal(20, l.registry.Player(bob).Fortitude())
	a.Equal(20, l.registry.Player(carol).Fortitude())
	a.Equal(PhaseOrderDrinks, l.turn.Phase())
}

func TestGainFortitude_playableOffTurn(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	bob := ids[1]

	l.registry.Player(bob).fortitude = 15
	setHand(l, bob, gainFortitudeCard("I've had worse bruises", 1))

	// it's alice's turn, but the card doesn't care
	a.NoError(l.PlayCard(bob, 0, ""))
	a.Equal(16, l.registry.Player(bob).Fortitude())
	a.Equal(PhaseDiscardAndDraw, l.turn.Phase())
}

func TestWenchTip_takesGold(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, wenchTipCard())

	a.Equal(ErrMissingTarget, l.PlayCard(alice, 0, ""))
	a.Equal(ErrInvalidTarget, l.PlayCard(alice, 0, alice))

	a.NoError(l.PlayCard(alice, 0, bob))
	a.NoError(l.Pass(bob))
	a.Equal(7, l.registry.Player(bob).Gold())
}

func TestWenchBringDrinks_ordersAnExtraDrink(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, wenchBringDrinksCard())

	a.NoError(l.PlayCard(alice, 0, ""))
	a.NoError(l.Pass(alice))
	a.NoError(l.Pass(bob))

	a.Equal(PhaseOrderDrinks, l.turn.Phase())
	a.Equal(2, l.turn.DrinksToOrder())

	a.NoError(l.OrderDrink(alice, bob))
	a.Equal(1, l.turn.DrinksToOrder())
	a.Equal(PhaseOrderDrinks, l.turn.Phase())

	// the second drink empties the order, and with nothing in her own pile
	// alice's turn ends
	a.NoError(l.OrderDrink(alice, bob))
	a.Equal(2, l.registry.Player(bob).DrinkPileSize())
	a.Equal(bob, l.turn.CurrentPlayer())
	a.Equal(PhaseDiscardAndDraw, l.turn.Phase())
}

func TestCombinedCard_answersBothKinds(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	combined := combinedInterruptCard(
		"Any fight is a good fight",
		ignoreDirectedCard("Any fight is a good fight"),
		ignoreDrinkCard("Any fight is a good fight"),
	)

	setHand(l, alice, changeFortitudeCard("A round of sparring, loser drinks!", -2))
	setHand(l, bob, combined)

	a.NoError(l.PlayCard(alice, 0, bob))
	a.NoError(l.PlayCard(bob, 0, ""))
	a.NoError(l.Pass(alice))

	a.Equal(20, l.registry.Player(bob).Fortitude())
}

func TestPlayCard_unplayableCardStaysInHand(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	tip := wenchTipCard()
	setHand(l, bob, tip)

	// not bob's turn
	a.Equal(ErrCannotPlayCard, l.PlayCard(bob, 0, alice))
	a.Equal([]Card{tip}, l.registry.Player(bob).Hand())

	a.Equal(ErrCardNotFound, l.PlayCard(bob, 1, alice))
	a.Equal(ErrPlayerNotFound, l.PlayCard("stranger", 0, alice))

	// a rejected target puts the card back too
	brawl := changeFortitudeCard("A round of sparring, loser drinks!", -2)
	setHand(l, alice, brawl)
	a.Equal(ErrInvalidTarget, l.PlayCard(alice, 0, "stranger"))
	a.Equal([]Card{brawl}, l.registry.Player(alice).Hand())
}

func TestWinningHand_locksTheRound(t *testing.T) {
	a := assert.New(t)

	l, ids := newTestLogic(t, 2)
	alice, bob := ids[0], ids[1]
	l.turn.setPhase(PhaseAction)

	setHand(l, alice, gamblingImInCard(), gamblingImInCard())
	setHand(l, bob, winningHandCard())

	a.NoError(l.PlayCard(alice, 0, ""))
	a.NoError(l.Pass(bob))
	a.True(l.gambling.IsTurn(bob))

	// bob shows a winning hand, alice doesn't object
	a.NoError(l.PlayCard(bob, 0, ""))
	a.NoError(l.Pass(alice))

	winner, _ := l.gambling.Winner()
	a.Equal(bob, winner)
	a.True(l.gambling.NeedsCheating())
	a.True(l.gambling.IsTurn(alice))

	// an honest gambling card can no longer take the round back
	imIn := l.registry.Player(alice).Hand()[0]
	a.False(imIn.CanPlay(alice, l.gambling, l.interrupts, l.turn))
}
