package tavern

import (
	"sort"

	"github.com/sirupsen/logrus"

	"thirstydragon-server/internal/rng"
	"thirstydragon-server/pkg/deck"
)

// game size limits
const (
	MinPlayers = 2
	MaxPlayers = 8
)

type drinkEventState struct {
	event       DrinkEvent
	contestants map[PlayerID]bool
	scores      map[PlayerID]int
}

// Logic runs a single game of cards and drinks. It owns the player registry,
// the gambling round, the interrupt stacks, and the shared drink deck, and it
// routes every player action through them. Logic is not safe for concurrent
// use; the caller serializes access.
type Logic struct {
	logger     logrus.FieldLogger
	registry   *Registry
	gambling   *Gambling
	interrupts *InterruptEngine
	drinkDeck  *deck.Deck[DrinkCard]
	turn       *TurnInfo
	event      *drinkEventState
}

// NewLogic starts a new game with the given seated players. The first seat
// takes the first turn.
func NewLogic(logger logrus.FieldLogger, seated []SeatedPlayer, rand rng.Generator) (*Logic, error) {
	if len(seated) < MinPlayers || len(seated) > MaxPlayers {
		return nil, newInternalError("games seat between %d and %d players, got %d", MinPlayers, MaxPlayers, len(seated))
	}

	for _, sp := range seated {
		if sp.Character == nil {
			return nil, newInternalError("player %s has no character", sp.ID)
		}
	}

	return &Logic{
		logger:     logger,
		registry:   NewRegistry(seated, rand),
		gambling:   NewGambling(),
		interrupts: NewInterruptEngine(),
		drinkDeck:  deck.New(newDrinkDeck(), rand),
		turn:       newTurnInfo(seated[0].ID),
	}, nil
}

// Registry returns the player registry
func (l *Logic) Registry() *Registry {
	return l.registry
}

// Gambling returns the gambling round state
func (l *Logic) Gambling() *Gambling {
	return l.gambling
}

// Interrupts returns the interrupt engine
func (l *Logic) Interrupts() *InterruptEngine {
	return l.interrupts
}

// Turn returns the current turn
func (l *Logic) Turn() *TurnInfo {
	return l.turn
}

// DrinkDeckSizes returns the size of the shared drink deck's piles
func (l *Logic) DrinkDeckSizes() (drawPile, discardPile int) {
	return l.drinkDeck.DrawPileSize(), l.drinkDeck.DiscardPileSize()
}

// DrinkEvent returns the active drink event and the players still in it
func (l *Logic) DrinkEvent() (DrinkEvent, []PlayerID, bool) {
	if l.event == nil {
		return "", nil, false
	}

	ids := make([]PlayerID, 0, len(l.event.contestants))
	for _, id := range l.registry.PlayerIDs() {
		if l.event.contestants[id] {
			ids = append(ids, id)
		}
	}

	return l.event.event, ids, true
}

// IsRunning returns true while two or more players are still in the game
func (l *Logic) IsRunning() bool {
	return len(l.registry.AlivePlayerIDs()) >= MinPlayers
}

// Winner returns the last player standing once the game is over
func (l *Logic) Winner() (PlayerID, bool) {
	if l.IsRunning() {
		return "", false
	}

	return l.registry.Winner()
}

func (l *Logic) assertRunning() error {
	if !l.IsRunning() {
		return ErrGameOver
	}

	return nil
}

// CanPass returns true if the player has something to pass on
func (l *Logic) CanPass(id PlayerID) bool {
	if !l.IsRunning() {
		return false
	}

	if l.interrupts.InProgress() {
		return l.interrupts.IsTurnToInterrupt(id)
	}

	if l.gambling.RoundInProgress() && l.gambling.IsTurn(id) {
		return true
	}

	return l.turn.CanPlayActionCard(id, l.gambling)
}

// PlayCard plays the card at cardIndex in the player's hand. Directed cards
// need a target; everything else ignores it. A card that can't be played
// stays in the hand.
func (l *Logic) PlayCard(id PlayerID, cardIndex int, target PlayerID) error {
	if err := l.assertRunning(); err != nil {
		return err
	}

	player := l.registry.Player(id)
	if player == nil {
		return ErrPlayerNotFound
	}

	card, ok := player.PopCard(cardIndex)
	if !ok {
		return ErrCardNotFound
	}

	if !card.CanPlay(id, l.gambling, l.interrupts, l.turn) {
		player.ReturnCard(card, cardIndex)
		return ErrCannotPlayCard
	}

	var err error
	switch c := card.(type) {
	case *RootCard:
		err = l.playRootCard(c, id, target)
	case *InterruptCard:
		err = l.playInterruptCard(c, id)
	default:
		err = newInternalError("unknown card type for %s", card.Name())
	}

	if err != nil {
		player.ReturnCard(card, cardIndex)
		return err
	}

	l.logger.WithFields(logrus.Fields{
		"player": id,
		"card":   card.Name(),
	}).Info("card played")

	return nil
}

// playRootCard validates the card's targeting, runs its pre-play step, and
// either executes it on the spot or opens interrupt stacks for it. Validation
// happens before any state changes so a rejected card leaves the game
// untouched.
func (l *Logic) playRootCard(card *RootCard, owner, target PlayerID) error {
	switch card.TargetStyle() {
	case TargetSelf:
		if !card.PrePlay(owner, l.registry, l.gambling, l.turn) || card.InterruptData() == nil {
			return l.executeRootDirect(card, owner, []PlayerID{owner})
		}

		return l.interrupts.StartSingleTarget(card, owner, owner)

	case TargetNextPlayer:
		next, outcome := l.registry.NextAlive(owner)
		if outcome != NextAliveFound {
			return ErrNoTargets
		}

		if !card.PrePlay(owner, l.registry, l.gambling, l.turn) {
			l.registry.Player(owner).DiscardCard(card)
			return nil
		}

		if card.InterruptData() == nil {
			return l.executeRootDirect(card, owner, []PlayerID{next})
		}

		return l.interrupts.StartSingleTarget(card, owner, next)

	case TargetSingleOther:
		if target == "" {
			return ErrMissingTarget
		}

		targetPlayer := l.registry.Player(target)
		if target == owner || targetPlayer == nil || targetPlayer.IsOutOfGame() {
			return ErrInvalidTarget
		}

		if !card.PrePlay(owner, l.registry, l.gambling, l.turn) {
			l.registry.Player(owner).DiscardCard(card)
			return nil
		}

		if card.InterruptData() == nil {
			return l.executeRootDirect(card, owner, []PlayerID{target})
		}

		return l.interrupts.StartSingleTarget(card, owner, target)

	case TargetAllOthers:
		targets := l.registry.AliveAfter(owner)
		if len(targets) == 0 {
			return ErrNoTargets
		}

		if !card.PrePlay(owner, l.registry, l.gambling, l.turn) {
			l.registry.Player(owner).DiscardCard(card)
			return nil
		}

		if card.InterruptData() == nil {
			return l.executeRootDirect(card, owner, targets)
		}

		return l.interrupts.StartMultiTarget(card, owner, targets)

	case TargetAllGamblingPlayers:
		targets := l.gamblingTargetsFrom(owner)
		if len(targets) == 0 {
			return ErrNoTargets
		}

		if !card.PrePlay(owner, l.registry, l.gambling, l.turn) {
			l.registry.Player(owner).DiscardCard(card)
			return nil
		}

		if card.InterruptData() == nil {
			return l.executeRootDirect(card, owner, targets)
		}

		return l.interrupts.StartMultiTarget(card, owner, targets)
	}

	return newInternalError("unknown target style for %s", card.Name())
}

// gamblingTargetsFrom returns the gambling participants rotated so the given
// player comes first
func (l *Logic) gamblingTargetsFrom(id PlayerID) []PlayerID {
	participants := l.gambling.Participants()

	start := -1
	for i, pid := range participants {
		if pid == id {
			start = i
			break
		}
	}

	if start == -1 {
		return participants
	}

	rotated := make([]PlayerID, 0, len(participants))
	for i := 0; i < len(participants); i++ {
		rotated = append(rotated, participants[(start+i)%len(participants)])
	}

	return rotated
}

func (l *Logic) executeRootDirect(card *RootCard, owner PlayerID, targets []PlayerID) error {
	for _, target := range targets {
		card.Execute(owner, target, l.registry, l.gambling)
	}

	l.registry.Player(owner).DiscardCard(card)
	return nil
}

func (l *Logic) playInterruptCard(card *InterruptCard, id PlayerID) error {
	result, err := l.interrupts.PlayInterrupt(card, id, l.registry, l.gambling, l.turn)
	if err != nil {
		return err
	}

	if result != nil {
		return l.afterResolve(result)
	}

	return nil
}

// afterResolve files away everything a resolved stack spent and moves the
// game along if the resolution closed out a phase
func (l *Logic) afterResolve(result *ResolveResult) error {
	for _, spent := range result.Interrupts() {
		if player := l.registry.Player(spent.Owner); player != nil {
			player.DiscardCard(spent.Card)
		}
	}

	if owner, card, ok := result.Root(); ok {
		if player := l.registry.Player(owner); player != nil {
			player.DiscardCard(card)
		}
	}

	if drink, ok := result.Drink(); ok {
		for _, card := range drink.Cards() {
			l.drinkDeck.Discard(card)
		}
	}

	if result.ActionPhaseOver() && l.turn.Phase() == PhaseAction {
		l.turn.SetOrderDrinksPhase()
	}

	if !l.interrupts.InProgress() && l.turn.Phase() == PhaseDrink {
		return l.continueDrinkPhase()
	}

	return nil
}

// Pass declines whatever is waiting on the player: the reaction turn, their
// gambling turn, or their action phase
func (l *Logic) Pass(id PlayerID) error {
	if err := l.assertRunning(); err != nil {
		return err
	}

	if l.registry.Player(id) == nil {
		return ErrPlayerNotFound
	}

	if l.interrupts.InProgress() {
		if !l.interrupts.IsTurnToInterrupt(id) {
			return ErrCannotPass
		}

		result, err := l.interrupts.Pass(id, l.registry, l.gambling, l.turn)
		if err != nil {
			return err
		}

		if result != nil {
			return l.afterResolve(result)
		}

		return nil
	}

	if l.gambling.RoundInProgress() && l.gambling.IsTurn(id) {
		l.gambling.Pass(l.registry, l.turn)
		return nil
	}

	if l.turn.CanPlayActionCard(id, l.gambling) {
		l.turn.SetOrderDrinksPhase()
		return nil
	}

	return ErrCannotPass
}

// DiscardAndDraw swaps out the cards at the given hand indexes and refills
// the hand, moving the turn to the action phase. Passing no indexes keeps
// the hand as is.
func (l *Logic) DiscardAndDraw(id PlayerID, cardIndexes []int) error {
	if err := l.assertRunning(); err != nil {
		return err
	}

	player := l.registry.Player(id)
	if player == nil {
		return ErrPlayerNotFound
	}

	if !l.turn.IsTurn(id) || l.interrupts.InProgress() {
		return ErrNotYourTurn
	}

	if l.turn.Phase() != PhaseDiscardAndDraw {
		return ErrWrongPhase
	}

	seen := make(map[int]bool)
	for _, i := range cardIndexes {
		if i < 0 || i >= len(player.Hand()) || seen[i] {
			return ErrCardNotFound
		}

		seen[i] = true
	}

	// pop from the back so the earlier indexes stay valid
	sorted := append([]int{}, cardIndexes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, i := range sorted {
		card, _ := player.PopCard(i)
		player.DiscardCard(card)
	}

	player.DrawToFull()
	l.turn.setPhase(PhaseAction)

	return nil
}

// OrderDrink sends a drink from the shared deck to another player's drink
// pile. Once every drink owed this turn is ordered, the player starts
// drinking.
func (l *Logic) OrderDrink(id, target PlayerID) error {
	if err := l.assertRunning(); err != nil {
		return err
	}

	if l.registry.Player(id) == nil {
		return ErrPlayerNotFound
	}

	if !l.turn.IsTurn(id) || l.interrupts.InProgress() {
		return ErrNotYourTurn
	}

	if l.turn.Phase() != PhaseOrderDrinks {
		return ErrWrongPhase
	}

	targetPlayer := l.registry.Player(target)
	if target == id || targetPlayer == nil || targetPlayer.IsOutOfGame() {
		return ErrInvalidTarget
	}

	if card, ok := l.drinkDeck.Draw(); ok {
		targetPlayer.AddDrinkToPile(card)
	} else {
		l.logger.Warn("drink deck is dry")
	}

	l.turn.drinkOrdered()
	if l.turn.DrinksToOrder() == 0 {
		return l.startDrinkPhase(id)
	}

	return nil
}

// startDrinkPhase turns over the top of the player's drink pile. A drink
// opens an interrupt stack; an event card kicks off its event; an empty pile
// ends the turn.
func (l *Logic) startDrinkPhase(id PlayerID) error {
	l.turn.setPhase(PhaseDrink)

	player := l.registry.Player(id)
	revealed, ok := player.RevealDrink()
	if !ok {
		return l.startNextTurn()
	}

	for _, card := range revealed.SetAside {
		l.drinkDeck.Discard(card)
	}

	if revealed.Event != "" {
		return l.startDrinkEvent(revealed.Event, id)
	}

	l.interrupts.StartDrink(revealed.Drink, id)
	return nil
}

func (l *Logic) startDrinkEvent(event DrinkEvent, id PlayerID) error {
	l.logger.WithField("event", event).Info("drink event revealed")

	switch event {
	case DrinkEventDrinkingContest:
		contestants := make(map[PlayerID]bool)
		for _, pid := range l.registry.AlivePlayerIDs() {
			contestants[pid] = true
		}

		l.event = &drinkEventState{event: event, contestants: contestants}
		return l.runContestRound()

	case DrinkEventRoundOnTheHouse:
		targets := l.registry.AliveAfter(id)
		drink := l.drawDrinkSkippingEvents()
		if drink == nil || len(targets) == 0 {
			return l.startNextTurn()
		}

		l.event = &drinkEventState{event: event}
		return l.interrupts.StartSharedDrink(drink, targets)
	}

	return newInternalError("unknown drink event %q", event)
}

// drawDrinkSkippingEvents draws from the shared deck until it turns up an
// actual drink, sending any event cards straight to the discard pile
func (l *Logic) drawDrinkSkippingEvents() *DrinkWithPossibleChasers {
	var drink *DrinkWithPossibleChasers

	for {
		card, ok := l.drinkDeck.Draw()
		if !ok {
			return drink
		}

		if _, isEvent := card.IsEvent(); isEvent {
			l.drinkDeck.Discard(card)
			continue
		}

		if drink == nil {
			drink = &DrinkWithPossibleChasers{
				drinks: []*Drink{card.drink},
				cards:  []DrinkCard{card},
			}
		} else {
			drink.drinks = append(drink.drinks, card.drink)
			drink.cards = append(drink.cards, card)
		}

		if !card.drink.HasChaser() {
			return drink
		}
	}
}

// runContestRound deals one revealed drink to every remaining contestant and
// records the strength of their pour. The drinks themselves still have to go
// down, so each one opens a drink stack.
func (l *Logic) runContestRound() error {
	l.event.scores = make(map[PlayerID]int)

	for _, id := range l.registry.PlayerIDs() {
		if !l.event.contestants[id] {
			continue
		}

		player := l.registry.Player(id)
		if player.IsOutOfGame() {
			delete(l.event.contestants, id)
			continue
		}

		drink := l.drawDrinkSkippingEvents()
		if drink == nil {
			continue
		}

		l.event.scores[id] = drink.AlcoholModifier(player)
		l.interrupts.StartDrink(drink, id)
	}

	if !l.interrupts.InProgress() {
		// deck was dry, nobody drank
		l.event = nil
		return l.startNextTurn()
	}

	return nil
}

// continueDrinkPhase runs after every drink stack has resolved. It settles
// the active drink event, or ends the turn.
func (l *Logic) continueDrinkPhase() error {
	if l.event == nil {
		return l.startNextTurn()
	}

	switch l.event.event {
	case DrinkEventRoundOnTheHouse:
		l.event = nil
		return l.startNextTurn()

	case DrinkEventDrinkingContest:
		return l.settleContestRound()
	}

	return newInternalError("unknown drink event %q", l.event.event)
}

// settleContestRound keeps the contestants with the strongest drinks in the
// contest. One survivor collects a gold piece from everyone else; a tie
// means another round.
func (l *Logic) settleContestRound() error {
	best := 0
	first := true
	for id := range l.event.contestants {
		score := l.event.scores[id]
		if first || score > best {
			best = score
			first = false
		}
	}

	for id := range l.event.contestants {
		if l.event.scores[id] < best {
			delete(l.event.contestants, id)
		}
	}

	if len(l.event.contestants) > 1 {
		return l.runContestRound()
	}

	for id := range l.event.contestants {
		l.payContestWinnings(id)
	}

	l.event = nil
	return l.startNextTurn()
}

func (l *Logic) payContestWinnings(winner PlayerID) {
	winnings := 0
	for _, id := range l.registry.AlivePlayerIDs() {
		if id == winner {
			continue
		}

		l.registry.Player(id).AddGold(-1)
		winnings++
	}

	l.registry.Player(winner).AddGold(winnings)

	l.logger.WithFields(logrus.Fields{
		"winner":   winner,
		"winnings": winnings,
	}).Info("drinking contest settled")
}

// startNextTurn hands the turn to the next player still in the game
func (l *Logic) startNextTurn() error {
	l.event = nil

	if !l.IsRunning() {
		return nil
	}

	next, outcome := l.registry.NextAlive(l.turn.CurrentPlayer())
	if outcome != NextAliveFound {
		return newInternalError("no player to take the next turn")
	}

	l.turn = newTurnInfo(next)

	l.logger.WithField("player", next).Info("turn started")
	return nil
}
