package tavern

// interruptRoot is the card (or drink) a group of stacks was built on. Stacks
// created by a fan-out share one root, so the root lives outside the stacks
// and is reference counted.
type interruptRoot struct {
	card     *RootCard
	owner    PlayerID
	drink    *DrinkWithPossibleChasers
	refs     int
	executed bool
}

type playedInterrupt struct {
	card      *InterruptCard
	owner     PlayerID
	reactedTo InterruptType
}

// interruptStack is one pending resolution. Stacks queue up first-in
// first-out; cards within a stack resolve last-in first-out.
type interruptStack struct {
	rootIndex  int
	target     PlayerID
	rootType   InterruptType
	cards      []playedInterrupt
	targetOnly bool
}

func (s *interruptStack) currentType() InterruptType {
	if len(s.cards) > 0 {
		return s.cards[len(s.cards)-1].card.Type()
	}

	return s.rootType
}

// lastToPlay returns the owner of the newest card on the stack, falling back
// to the root's owner. Drink roots have no owner.
func (s *interruptStack) lastToPlay(root *interruptRoot) (PlayerID, bool) {
	if len(s.cards) > 0 {
		return s.cards[len(s.cards)-1].owner, true
	}

	if root.card != nil {
		return root.owner, true
	}

	return "", false
}

// SpentInterrupt is a response card consumed during resolution
type SpentInterrupt struct {
	Owner PlayerID
	Card  *InterruptCard
}

// ResolveResult is everything that came off a stack when it resolved. The
// response cards are listed in the order they were ruled on, and the root, if
// it's no longer referenced by a sibling stack, comes last.
type ResolveResult struct {
	interrupts      []SpentInterrupt
	rootCard        *RootCard
	rootOwner       PlayerID
	drink           *DrinkWithPossibleChasers
	actionPhaseOver bool
}

// Interrupts returns the consumed response cards in resolution order
func (r *ResolveResult) Interrupts() []SpentInterrupt {
	return r.interrupts
}

// Root returns the spent root card and its owner, if the root was spent
func (r *ResolveResult) Root() (PlayerID, *RootCard, bool) {
	if r.rootCard == nil {
		return "", nil, false
	}

	return r.rootOwner, r.rootCard, true
}

// Drink returns the spent drink, if the stack was built on one
func (r *ResolveResult) Drink() (*DrinkWithPossibleChasers, bool) {
	if r.drink == nil {
		return nil, false
	}

	return r.drink, true
}

// ActionPhaseOver returns true if the resolved card used up the current
// player's action phase
func (r *ResolveResult) ActionPhaseOver() bool {
	return r.actionPhaseOver
}

// InterruptEngine runs the card response stacks. While any stack is pending,
// normal play is frozen and the reaction turn moves around the table.
type InterruptEngine struct {
	roots       []*interruptRoot
	stacks      []*interruptStack
	currentTurn PlayerID
}

// NewInterruptEngine returns an engine with no pending stacks
func NewInterruptEngine() *InterruptEngine {
	return &InterruptEngine{}
}

// InProgress returns true while any stack is pending
func (e *InterruptEngine) InProgress() bool {
	return len(e.stacks) > 0
}

// IsTurnToInterrupt returns true if the player holds the reaction turn
func (e *InterruptEngine) IsTurnToInterrupt(id PlayerID) bool {
	return len(e.stacks) > 0 && e.currentTurn == id
}

// CurrentTurn returns the player holding the reaction turn
func (e *InterruptEngine) CurrentTurn() (PlayerID, bool) {
	if len(e.stacks) == 0 {
		return "", false
	}

	return e.currentTurn, true
}

// CurrentInterruptType returns the type on top of the front stack
func (e *InterruptEngine) CurrentInterruptType() (InterruptType, bool) {
	if len(e.stacks) == 0 {
		return InterruptType{}, false
	}

	return e.stacks[0].currentType(), true
}

// StartSingleTarget opens a stack for a root card aimed at one player
func (e *InterruptEngine) StartSingleTarget(root *RootCard, owner, target PlayerID) error {
	if e.InProgress() {
		return ErrInterruptInProgress
	}

	if root.InterruptData() == nil {
		return ErrNotInterruptable
	}

	i := e.addRoot(&interruptRoot{card: root, owner: owner, refs: 1})
	e.stacks = append(e.stacks, &interruptStack{
		rootIndex: i,
		target:    target,
		rootType:  root.InterruptData().Type(),
	})
	e.currentTurn = target

	return nil
}

// StartMultiTarget opens one stack per target, all sharing the root. Each
// stack only gives its own target a chance to respond, and they resolve in
// target order.
func (e *InterruptEngine) StartMultiTarget(root *RootCard, owner PlayerID, targets []PlayerID) error {
	if e.InProgress() {
		return ErrInterruptInProgress
	}

	if root.InterruptData() == nil {
		return ErrNotInterruptable
	}

	if len(targets) == 0 {
		return ErrNoTargets
	}

	i := e.addRoot(&interruptRoot{card: root, owner: owner, refs: len(targets)})
	for _, target := range targets {
		e.stacks = append(e.stacks, &interruptStack{
			rootIndex:  i,
			target:     target,
			rootType:   root.InterruptData().Type(),
			targetOnly: true,
		})
	}
	e.currentTurn = targets[0]

	return nil
}

// StartDrink opens a stack for a drink about to be drunk. Drink stacks may
// queue behind pending stacks and only let the drinker respond.
func (e *InterruptEngine) StartDrink(drink *DrinkWithPossibleChasers, target PlayerID) {
	e.startDrink(drink, []PlayerID{target})
}

// StartSharedDrink opens one stack per target for a drink everybody drinks
func (e *InterruptEngine) StartSharedDrink(drink *DrinkWithPossibleChasers, targets []PlayerID) error {
	if len(targets) == 0 {
		return ErrNoTargets
	}

	e.startDrink(drink, targets)
	return nil
}

func (e *InterruptEngine) startDrink(drink *DrinkWithPossibleChasers, targets []PlayerID) {
	wasEmpty := len(e.stacks) == 0

	i := e.addRoot(&interruptRoot{drink: drink, refs: len(targets)})
	for _, target := range targets {
		e.stacks = append(e.stacks, &interruptStack{
			rootIndex:  i,
			target:     target,
			rootType:   InterruptType{Kind: InterruptDrink},
			targetOnly: true,
		})
	}

	if wasEmpty {
		e.currentTurn = targets[0]
	}
}

// PlayInterrupt pushes a response card onto the front stack on behalf of the
// player holding the reaction turn. If the push hands the reaction turn back
// to the last player to act, the stack resolves and the result is returned.
func (e *InterruptEngine) PlayInterrupt(card *InterruptCard, player PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) (*ResolveResult, error) {
	if !e.IsTurnToInterrupt(player) {
		return nil, ErrNotYourTurn
	}

	stack := e.stacks[0]
	current := stack.currentType()
	if !card.CanInterrupt(current) {
		return nil, ErrCannotInterrupt
	}

	stack.cards = append(stack.cards, playedInterrupt{
		card:      card,
		owner:     player,
		reactedTo: current,
	})

	return e.advanceOrResolve(registry, gambling, turn)
}

// Pass declines to respond and moves the reaction turn along, resolving the
// front stack once everyone has had their say
func (e *InterruptEngine) Pass(player PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) (*ResolveResult, error) {
	if !e.IsTurnToInterrupt(player) {
		return nil, ErrNotYourTurn
	}

	return e.advanceOrResolve(registry, gambling, turn)
}

func (e *InterruptEngine) addRoot(root *interruptRoot) int {
	e.roots = append(e.roots, root)
	return len(e.roots) - 1
}

func (e *InterruptEngine) advanceOrResolve(registry *Registry, gambling *Gambling, turn *TurnInfo) (*ResolveResult, error) {
	if len(e.stacks) == 0 {
		return nil, newInternalError("no stack to advance")
	}

	stack := e.stacks[0]
	if stack.targetOnly {
		return e.resolve(registry, gambling, turn)
	}

	next, outcome := registry.NextAlive(e.currentTurn)
	switch outcome {
	case NextAlivePlayerNotFound:
		return nil, newInternalError("reaction turn holder %s is not seated", e.currentTurn)
	case NextAliveOnlyOneLeft:
		return e.resolve(registry, gambling, turn)
	}

	last, ok := stack.lastToPlay(e.roots[stack.rootIndex])
	if ok && next == last {
		return e.resolve(registry, gambling, turn)
	}

	e.currentTurn = next
	return nil, nil
}

// resolve pops the front stack card by card, newest first. Each card rules on
// the card below it. An ignore or negate ruling consumes the next older card,
// or marks the root when no older card remains.
func (e *InterruptEngine) resolve(registry *Registry, gambling *Gambling, turn *TurnInfo) (*ResolveResult, error) {
	stack := e.stacks[0]
	e.stacks = e.stacks[1:]
	root := e.roots[stack.rootIndex]

	result := &ResolveResult{}
	rootVerdict := VerdictNo

	for len(stack.cards) > 0 {
		played := stack.cards[len(stack.cards)-1]
		stack.cards = stack.cards[:len(stack.cards)-1]

		verdict := played.card.Verdict(played.owner, played.reactedTo, registry, gambling)
		if verdict == VerdictIgnore || verdict == VerdictNegate {
			if len(stack.cards) > 0 {
				older := stack.cards[len(stack.cards)-1]
				stack.cards = stack.cards[:len(stack.cards)-1]
				result.interrupts = append(result.interrupts, SpentInterrupt{Owner: older.owner, Card: older.card})
			} else {
				rootVerdict = verdict
			}
		}

		result.interrupts = append(result.interrupts, SpentInterrupt{Owner: played.owner, Card: played.card})
	}

	root.refs--

	switch rootVerdict {
	case VerdictNegate:
		// a negated root takes its sibling stacks down with it, unexecuted
		kept := e.stacks[:0]
		for _, sibling := range e.stacks {
			if sibling.rootIndex != stack.rootIndex {
				kept = append(kept, sibling)
				continue
			}

			for i := len(sibling.cards) - 1; i >= 0; i-- {
				result.interrupts = append(result.interrupts, SpentInterrupt{
					Owner: sibling.cards[i].owner,
					Card:  sibling.cards[i].card,
				})
			}
		}
		e.stacks = kept
		root.refs = 0

	case VerdictNo:
		root.executed = true
		if root.card != nil {
			root.card.Execute(root.owner, stack.target, registry, gambling)
		} else if player := registry.Player(stack.target); player != nil {
			root.drink.Process(player)
		}
	}

	if root.refs <= 0 {
		if root.card != nil {
			result.rootCard = root.card
			result.rootOwner = root.owner
			result.actionPhaseOver = root.card.IsActionCard() && !gambling.RoundInProgress()
			if root.executed {
				root.card.PostResolve(root.owner, registry, gambling, turn)
			}
		} else {
			result.drink = root.drink
		}
	}

	if len(e.stacks) > 0 {
		e.currentTurn = e.stacks[0].target
	} else {
		e.roots = e.roots[:0]
	}

	return result, nil
}
