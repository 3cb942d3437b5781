package tavern

// InterruptKind is the variant of a stack's current interrupt type. Whether a
// response card may be played is decided on the kind alone. Any payload on the
// type is flavor for the clients, not part of the match.
type InterruptKind string

// InterruptKind constants
const (
	// InterruptAboutToAnte means a player is about to pay an ante
	InterruptAboutToAnte InterruptKind = "aboutToAnte"

	// InterruptDirectedActionCard means an action card was aimed at a single player
	InterruptDirectedActionCard InterruptKind = "directedActionCard"

	// InterruptSometimesCard covers the remaining interruptable card plays
	InterruptSometimesCard InterruptKind = "sometimesCard"

	// InterruptDrink means a drink is about to be drunk
	InterruptDrink InterruptKind = "drink"
)

// InterruptType describes the thing currently on top of an interrupt stack
type InterruptType struct {
	Kind             InterruptKind `json:"kind"`
	AffectsFortitude bool          `json:"affectsFortitude,omitempty"`
	IsIDontThinkSo   bool          `json:"isIDontThinkSo,omitempty"`
}

// Verdict is a response card's ruling on the card below it on the stack
type Verdict int

// Verdict constants
const (
	// VerdictNo leaves the card below alone
	VerdictNo Verdict = iota

	// VerdictIgnore consumes the card below without executing it
	VerdictIgnore

	// VerdictNegate consumes the card below, and when that card is the root,
	// throws away every other stack sharing it
	VerdictNegate
)

// TargetStyle determines who a root card is aimed at
type TargetStyle int

// TargetStyle constants
const (
	// TargetSelf aims the card at its owner
	TargetSelf TargetStyle = iota

	// TargetNextPlayer aims the card at the next player still in the game
	TargetNextPlayer

	// TargetSingleOther requires the owner to pick another player
	TargetSingleOther

	// TargetAllOthers fans the card out to every other player still in the game
	TargetAllOthers

	// TargetAllGamblingPlayers fans the card out to every gambling participant,
	// the owner included
	TargetAllGamblingPlayers
)

// Card is a card in a player's hand, either a *RootCard or an *InterruptCard
type Card interface {
	// Name returns the display name of the card
	Name() string

	// CanPlay returns true if the owner may play the card right now
	CanPlay(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool
}

type (
	prePlayFunc     func(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) bool
	effectFunc      func(owner, target PlayerID, registry *Registry, gambling *Gambling)
	postResolveFunc func(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo)
	verdictFunc     func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict
	canPlayFunc     func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool
)

// InterruptData is the response metadata carried by an interruptable root card
type InterruptData struct {
	interruptType InterruptType
	postResolve   postResolveFunc
}

// Type returns the interrupt type the root puts on the stack
func (d *InterruptData) Type() InterruptType {
	return d.interruptType
}

// RootCard is a card that starts an interrupt stack when played. A root
// without InterruptData executes immediately instead.
type RootCard struct {
	name          string
	targetStyle   TargetStyle
	isActionCard  bool
	canPlay       canPlayFunc
	prePlay       prePlayFunc
	effect        effectFunc
	interruptData *InterruptData
}

// Name returns the display name of the card
func (c *RootCard) Name() string {
	return c.name
}

// TargetStyle returns who the card is aimed at
func (c *RootCard) TargetStyle() TargetStyle {
	return c.targetStyle
}

// IsActionCard returns true if playing the card uses up the owner's action phase
func (c *RootCard) IsActionCard() bool {
	return c.isActionCard
}

// InterruptData returns the response metadata, or nil if the card cannot be
// responded to
func (c *RootCard) InterruptData() *InterruptData {
	return c.interruptData
}

// CanPlay returns true if the owner may play the card right now
func (c *RootCard) CanPlay(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
	if c.canPlay != nil {
		return c.canPlay(owner, gambling, interrupts, turn)
	}

	return !interrupts.InProgress() && turn.CanPlayActionCard(owner, gambling)
}

// PrePlay runs before the card hits a stack. It returns false if the card
// already did its work and no stack should be started.
func (c *RootCard) PrePlay(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) bool {
	if c.prePlay == nil {
		return true
	}

	return c.prePlay(owner, registry, gambling, turn)
}

// Execute performs the card's effect against a single target
func (c *RootCard) Execute(owner, target PlayerID, registry *Registry, gambling *Gambling) {
	if c.effect != nil {
		c.effect(owner, target, registry, gambling)
	}
}

// PostResolve runs once, after the root has been fully resolved and executed
func (c *RootCard) PostResolve(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) {
	if c.interruptData != nil && c.interruptData.postResolve != nil {
		c.interruptData.postResolve(owner, registry, gambling, turn)
	}
}

// InterruptCard is a card played in response to a card already on a stack
type InterruptCard struct {
	name          string
	reactsTo      []InterruptKind
	interruptType InterruptType
	canPlay       canPlayFunc
	verdict       verdictFunc
}

// Name returns the display name of the card
func (c *InterruptCard) Name() string {
	return c.name
}

// Type returns the interrupt type the card puts on the stack
func (c *InterruptCard) Type() InterruptType {
	return c.interruptType
}

// CanInterrupt returns true if the card may respond to the given type
func (c *InterruptCard) CanInterrupt(t InterruptType) bool {
	for _, kind := range c.reactsTo {
		if kind == t.Kind {
			return true
		}
	}

	return false
}

// CanPlay returns true if the owner may play the card right now
func (c *InterruptCard) CanPlay(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
	if !interrupts.IsTurnToInterrupt(owner) {
		return false
	}

	current, ok := interrupts.CurrentInterruptType()
	if !ok || !c.CanInterrupt(current) {
		return false
	}

	if c.canPlay != nil {
		return c.canPlay(owner, gambling, interrupts, turn)
	}

	return true
}

// Verdict asks the card to rule on the card it responded to
func (c *InterruptCard) Verdict(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
	if c.verdict == nil {
		return VerdictNo
	}

	return c.verdict(owner, reactedTo, registry, gambling)
}
