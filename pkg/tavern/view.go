package tavern

// HandCardView is one card in the viewing player's hand
type HandCardView struct {
	Name     string `json:"name"`
	Playable bool   `json:"playable"`
}

// PlayerView is what everyone at the table can see about a player
type PlayerView struct {
	ID              PlayerID `json:"id"`
	DisplayName     string   `json:"displayName"`
	Character       string   `json:"character"`
	Gold            int      `json:"gold"`
	AlcoholContent  int      `json:"alcoholContent"`
	Fortitude       int      `json:"fortitude"`
	HandSize        int      `json:"handSize"`
	DrawPileSize    int      `json:"drawPileSize"`
	DiscardPileSize int      `json:"discardPileSize"`
	DrinkPileSize   int      `json:"drinkPileSize"`
	IsOutOfGame     bool     `json:"isOutOfGame"`
}

// InterruptStackView is one pending stack
type InterruptStackView struct {
	RootName  string        `json:"rootName"`
	RootOwner PlayerID      `json:"rootOwner,omitempty"`
	IsDrink   bool          `json:"isDrink"`
	Target    PlayerID      `json:"target"`
	Type      InterruptType `json:"type"`
	CardNames []string      `json:"cardNames"`
}

// InterruptView is the pending stacks and whose reaction turn it is
type InterruptView struct {
	Stacks      []InterruptStackView `json:"stacks"`
	CurrentTurn PlayerID             `json:"currentTurn"`
}

// GamblingView is the state of the running gambling round
type GamblingView struct {
	Pot           int        `json:"pot"`
	CurrentTurn   PlayerID   `json:"currentTurn"`
	Winner        PlayerID   `json:"winner"`
	NeedsCheating bool       `json:"needsCheating"`
	Participants  []PlayerID `json:"participants"`
}

// DrinkEventView is the state of the running drink event
type DrinkEventView struct {
	Event       DrinkEvent `json:"event"`
	Contestants []PlayerID `json:"contestants"`
}

// GameView is a player's view of the game. Other players' hands stay hidden.
type GameView struct {
	Players       []PlayerView    `json:"players"`
	CurrentTurn   PlayerID        `json:"currentTurn"`
	Phase         TurnPhase       `json:"phase"`
	DrinksToOrder int             `json:"drinksToOrder"`
	Hand          []HandCardView  `json:"hand"`
	CanPass       bool            `json:"canPass"`
	Gambling      *GamblingView   `json:"gambling,omitempty"`
	Interrupts    *InterruptView  `json:"interrupts,omitempty"`
	DrinkEvent    *DrinkEventView `json:"drinkEvent,omitempty"`
	IsRunning     bool            `json:"isRunning"`
	Winner        PlayerID        `json:"winner,omitempty"`
}

// View builds the given player's view of the game. Display names come from
// the caller since the game only knows player IDs.
func (l *Logic) View(id PlayerID, displayNames map[PlayerID]string) *GameView {
	view := &GameView{
		CurrentTurn:   l.turn.CurrentPlayer(),
		Phase:         l.turn.Phase(),
		DrinksToOrder: l.turn.DrinksToOrder(),
		CanPass:       l.CanPass(id),
		IsRunning:     l.IsRunning(),
	}

	if winner, ok := l.Winner(); ok {
		view.Winner = winner
	}

	for _, pid := range l.registry.PlayerIDs() {
		player := l.registry.Player(pid)
		view.Players = append(view.Players, PlayerView{
			ID:              pid,
			DisplayName:     displayNames[pid],
			Character:       player.Character().Name,
			Gold:            player.Gold(),
			AlcoholContent:  player.AlcoholContent(),
			Fortitude:       player.Fortitude(),
			HandSize:        len(player.Hand()),
			DrawPileSize:    player.DrawPileSize(),
			DiscardPileSize: player.DiscardPileSize(),
			DrinkPileSize:   player.DrinkPileSize(),
			IsOutOfGame:     player.IsOutOfGame(),
		})
	}

	if viewer := l.registry.Player(id); viewer != nil {
		view.Hand = make([]HandCardView, 0, len(viewer.Hand()))
		for _, card := range viewer.Hand() {
			view.Hand = append(view.Hand, HandCardView{
				Name:     card.Name(),
				Playable: l.IsRunning() && card.CanPlay(id, l.gambling, l.interrupts, l.turn),
			})
		}
	}

	if l.gambling.RoundInProgress() {
		winner, _ := l.gambling.Winner()
		gv := &GamblingView{
			Pot:           l.gambling.Pot(),
			Winner:        winner,
			NeedsCheating: l.gambling.NeedsCheating(),
			Participants:  l.gambling.Participants(),
		}

		if current, ok := l.gambling.CurrentTurn(); ok {
			gv.CurrentTurn = current
		}

		view.Gambling = gv
	}

	if l.interrupts.InProgress() {
		iv := &InterruptView{}
		if current, ok := l.interrupts.CurrentTurn(); ok {
			iv.CurrentTurn = current
		}

		for _, stack := range l.interrupts.stacks {
			root := l.interrupts.roots[stack.rootIndex]

			sv := InterruptStackView{
				Target: stack.target,
				Type:   stack.currentType(),
			}

			if root.card != nil {
				sv.RootName = root.card.Name()
				sv.RootOwner = root.owner
			} else {
				sv.RootName = root.drink.Name()
				sv.IsDrink = true
			}

			for _, played := range stack.cards {
				sv.CardNames = append(sv.CardNames, played.card.Name())
			}

			iv.Stacks = append(iv.Stacks, sv)
		}

		view.Interrupts = iv
	}

	if event, contestants, ok := l.DrinkEvent(); ok {
		view.DrinkEvent = &DrinkEventView{
			Event:       event,
			Contestants: contestants,
		}
	}

	return view
}
