package tavern

// The card constructors below build the cards the character decks are made
// of. Cards are immutable, so a single instance can safely sit in more than
// one deck.

// gamblingImInCard starts a gambling round, or takes control of the round
// already going
func gamblingImInCard() *RootCard {
	return &RootCard{
		name:         "Gambling? I'm in!",
		targetStyle:  TargetNextPlayer,
		isActionCard: true,
		canPlay: func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
			if interrupts.InProgress() {
				return false
			}

			if gambling.RoundInProgress() {
				return gambling.IsTurn(owner) && !gambling.NeedsCheating()
			}

			return turn.CanPlayActionCard(owner, gambling)
		},
		prePlay: func(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) bool {
			if gambling.RoundInProgress() {
				gambling.TakeControl(owner, false, registry)
				return false
			}

			gambling.Start(owner, registry)
			return true
		},
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			gambling.Ante(target, registry)
		},
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptAboutToAnte},
			postResolve: func(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) {
				gambling.Pass(registry, turn)
			},
		},
	}
}

// iRaiseCard makes every participant ante again and puts the owner in control
func iRaiseCard() *RootCard {
	return &RootCard{
		name:        "I raise!",
		targetStyle: TargetAllGamblingPlayers,
		canPlay: func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
			return !interrupts.InProgress() && gambling.IsTurn(owner)
		},
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			gambling.Ante(target, registry)
		},
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptAboutToAnte},
			postResolve: func(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) {
				gambling.TakeControl(owner, false, registry)
			},
		},
	}
}

// winningHandCard takes control of the round, and control can only be taken
// back by cheating
func winningHandCard() *RootCard {
	return &RootCard{
		name:        "Winning Hand!",
		targetStyle: TargetNextPlayer,
		canPlay: func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
			return !interrupts.InProgress() && gambling.IsTurn(owner) && !gambling.NeedsCheating()
		},
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			gambling.TakeControl(owner, true, registry)
		},
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptSometimesCard},
		},
	}
}

// gamblingCheatCard responds to an ante or a played gambling card by taking
// control of the round. The card it responds to is ignored, so a cheater
// never pays the ante they dodged.
func gamblingCheatCard(name string) *InterruptCard {
	return &InterruptCard{
		name:          name,
		reactsTo:      []InterruptKind{InterruptAboutToAnte, InterruptSometimesCard},
		interruptType: InterruptType{Kind: InterruptSometimesCard},
		canPlay: func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
			return gambling.RoundInProgress()
		},
		verdict: func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
			gambling.TakeControl(owner, true, registry)
			return VerdictIgnore
		},
	}
}

// leaveGamblingRoundCard lets the owner duck out of the round instead of
// anteing. The last two participants are stuck, so the card falls back to
// letting the ante through.
func leaveGamblingRoundCard(name string) *InterruptCard {
	return &InterruptCard{
		name:          name,
		reactsTo:      []InterruptKind{InterruptAboutToAnte},
		interruptType: InterruptType{Kind: InterruptSometimesCard},
		verdict: func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
			if err := gambling.Leave(owner, registry); err != nil {
				return VerdictNo
			}

			return VerdictIgnore
		},
	}
}

// changeFortitudeCard aims a fortitude change at a single other player
func changeFortitudeCard(name string, amount int) *RootCard {
	return &RootCard{
		name:         name,
		targetStyle:  TargetSingleOther,
		isActionCard: true,
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			if player := registry.Player(target); player != nil {
				player.AddFortitude(amount)
			}
		},
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptDirectedActionCard, AffectsFortitude: true},
		},
	}
}

// changeAllOthersFortitudeCard fans a fortitude change out to every other player
func changeAllOthersFortitudeCard(name string, amount int) *RootCard {
	return &RootCard{
		name:         name,
		targetStyle:  TargetAllOthers,
		isActionCard: true,
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			if player := registry.Player(target); player != nil {
				player.AddFortitude(amount)
			}
		},
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptDirectedActionCard, AffectsFortitude: true},
		},
	}
}

// gainFortitudeCard raises the owner's fortitude and can be played at any
// time, even off turn
func gainFortitudeCard(name string, amount int) *RootCard {
	return &RootCard{
		name:        name,
		targetStyle: TargetSelf,
		canPlay: func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
			return !interrupts.InProgress()
		},
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			if player := registry.Player(owner); player != nil {
				player.AddFortitude(amount)
			}
		},
	}
}

// wenchBringDrinksCard makes the owner order an extra drink this turn
func wenchBringDrinksCard() *RootCard {
	return &RootCard{
		name:         "Wench, bring some drinks for my friends!",
		targetStyle:  TargetSelf,
		isActionCard: true,
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptSometimesCard},
			postResolve: func(owner PlayerID, registry *Registry, gambling *Gambling, turn *TurnInfo) {
				turn.AddDrinksToOrder(1)
			},
		},
	}
}

// wenchTipCard makes another player's gold disappear into the wench's pocket
func wenchTipCard() *RootCard {
	return &RootCard{
		name:         "Oh, I guess the wench thought that was her tip",
		targetStyle:  TargetSingleOther,
		isActionCard: true,
		effect: func(owner, target PlayerID, registry *Registry, gambling *Gambling) {
			if player := registry.Player(target); player != nil {
				player.AddGold(-1)
			}
		},
		interruptData: &InterruptData{
			interruptType: InterruptType{Kind: InterruptDirectedActionCard},
		},
	}
}

// ignoreDirectedCard shrugs off an action card aimed at the owner
func ignoreDirectedCard(name string) *InterruptCard {
	return &InterruptCard{
		name:          name,
		reactsTo:      []InterruptKind{InterruptDirectedActionCard},
		interruptType: InterruptType{Kind: InterruptSometimesCard},
		verdict: func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
			return VerdictIgnore
		},
	}
}

// iDontThinkSoCard negates the card below it, and can itself be negated by
// another of its kind
func iDontThinkSoCard() *InterruptCard {
	return &InterruptCard{
		name:          "I don't think so!",
		reactsTo:      []InterruptKind{InterruptDirectedActionCard, InterruptSometimesCard},
		interruptType: InterruptType{Kind: InterruptSometimesCard, IsIDontThinkSo: true},
		verdict: func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
			return VerdictNegate
		},
	}
}

// ignoreDrinkCard lets the owner wave off a drink they were about to drink
func ignoreDrinkCard(name string) *InterruptCard {
	return &InterruptCard{
		name:          name,
		reactsTo:      []InterruptKind{InterruptDrink},
		interruptType: InterruptType{Kind: InterruptSometimesCard},
		verdict: func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
			return VerdictIgnore
		},
	}
}

// combinedInterruptCard glues two response cards onto one. Whichever half
// matches what the card responded to supplies the verdict; the first half
// wins if both match.
func combinedInterruptCard(name string, first, second *InterruptCard) *InterruptCard {
	reactsTo := append(append([]InterruptKind{}, first.reactsTo...), second.reactsTo...)

	return &InterruptCard{
		name:          name,
		reactsTo:      reactsTo,
		interruptType: first.interruptType,
		canPlay: func(owner PlayerID, gambling *Gambling, interrupts *InterruptEngine, turn *TurnInfo) bool {
			current, ok := interrupts.CurrentInterruptType()
			if !ok {
				return false
			}

			if first.CanInterrupt(current) {
				if first.canPlay == nil {
					return true
				}

				return first.canPlay(owner, gambling, interrupts, turn)
			}

			if second.canPlay == nil {
				return true
			}

			return second.canPlay(owner, gambling, interrupts, turn)
		},
		verdict: func(owner PlayerID, reactedTo InterruptType, registry *Registry, gambling *Gambling) Verdict {
			if first.CanInterrupt(reactedTo) {
				return first.Verdict(owner, reactedTo, registry, gambling)
			}

			return second.Verdict(owner, reactedTo, registry, gambling)
		},
	}
}
