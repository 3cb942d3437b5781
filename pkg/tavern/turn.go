package tavern

// TurnPhase is the phase the current player's turn is in
type TurnPhase string

// TurnPhase constants
const (
	// PhaseDiscardAndDraw is the start of the turn, where the player may swap out cards
	PhaseDiscardAndDraw TurnPhase = "discardAndDraw"

	// PhaseAction is where the player may play an action card or pass
	PhaseAction TurnPhase = "action"

	// PhaseOrderDrinks is where the player sends drinks to other players
	PhaseOrderDrinks TurnPhase = "orderDrinks"

	// PhaseDrink is where the player drinks from their drink pile
	PhaseDrink TurnPhase = "drink"
)

// TurnInfo tracks whose turn it is and where in the turn they are
type TurnInfo struct {
	playerTurn    PlayerID
	phase         TurnPhase
	drinksToOrder int
}

func newTurnInfo(player PlayerID) *TurnInfo {
	return &TurnInfo{
		playerTurn:    player,
		phase:         PhaseDiscardAndDraw,
		drinksToOrder: 1,
	}
}

// CurrentPlayer returns the player whose turn it is
func (t *TurnInfo) CurrentPlayer() PlayerID {
	return t.playerTurn
}

// Phase returns the current phase of the turn
func (t *TurnInfo) Phase() TurnPhase {
	return t.phase
}

// IsTurn returns true if it's the given player's turn
func (t *TurnInfo) IsTurn(id PlayerID) bool {
	return t.playerTurn == id
}

// CanPlayActionCard returns true if the player may play an action card. Action
// cards are off the table while a gambling round is going.
func (t *TurnInfo) CanPlayActionCard(id PlayerID, gambling *Gambling) bool {
	return t.playerTurn == id && t.phase == PhaseAction && !gambling.RoundInProgress()
}

// DrinksToOrder returns how many drinks still need to be ordered this turn
func (t *TurnInfo) DrinksToOrder() int {
	return t.drinksToOrder
}

// AddDrinksToOrder raises the number of drinks ordered this turn
func (t *TurnInfo) AddDrinksToOrder(n int) {
	t.drinksToOrder += n
}

func (t *TurnInfo) drinkOrdered() {
	if t.drinksToOrder > 0 {
		t.drinksToOrder--
	}
}

func (t *TurnInfo) setPhase(phase TurnPhase) {
	t.phase = phase
}

// SetOrderDrinksPhase moves the turn to the order drinks phase
func (t *TurnInfo) SetOrderDrinksPhase() {
	t.phase = PhaseOrderDrinks
}
