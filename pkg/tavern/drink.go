package tavern

import (
	"strings"
)

// DrinkEvent is a drink card that triggers a table-wide event instead of a drink
type DrinkEvent string

// DrinkEvent constants
const (
	// DrinkEventDrinkingContest pits every in-game player against each other,
	// strongest drink wins
	DrinkEventDrinkingContest DrinkEvent = "drinkingContest"

	// DrinkEventRoundOnTheHouse deals one shared drink to everyone but the
	// current player
	DrinkEventRoundOnTheHouse DrinkEvent = "roundOnTheHouse"
)

type drinkModifier func(p *Player) int

// Drink adjusts whoever drinks it. The modifiers see the drinker, so a drink
// can hit an orc or a troll differently than everyone else.
type Drink struct {
	name      string
	alcohol   drinkModifier
	fortitude drinkModifier
	hasChaser bool
}

// Name returns the display name of the drink
func (d *Drink) Name() string {
	return d.name
}

// HasChaser returns true if the next card in the pile is drunk along with
// this one
func (d *Drink) HasChaser() bool {
	return d.hasChaser
}

// DrinkCard is a card in the drink deck, either a drink or an event
type DrinkCard struct {
	drink *Drink
	event DrinkEvent
}

func newDrinkCard(d *Drink) DrinkCard {
	return DrinkCard{drink: d}
}

func newDrinkEventCard(e DrinkEvent) DrinkCard {
	return DrinkCard{event: e}
}

// IsEvent returns the event, if the card is one
func (c DrinkCard) IsEvent() (DrinkEvent, bool) {
	if c.event != "" {
		return c.event, true
	}

	return "", false
}

// Name returns the display name of the card
func (c DrinkCard) Name() string {
	if c.drink != nil {
		return c.drink.name
	}

	switch c.event {
	case DrinkEventDrinkingContest:
		return "Drinking Contest!"
	case DrinkEventRoundOnTheHouse:
		return "Round on the House!"
	}

	return "Unknown"
}

// DrinkWithPossibleChasers is a revealed drink plus any chasers chained onto
// it. The whole thing goes down in one gulp and is ignored as one.
type DrinkWithPossibleChasers struct {
	drinks []*Drink
	cards  []DrinkCard
}

// Name returns the combined display name of the drinks
func (d *DrinkWithPossibleChasers) Name() string {
	names := make([]string, len(d.drinks))
	for i, drink := range d.drinks {
		names[i] = drink.name
	}

	return strings.Join(names, " with a chaser of ")
}

// Cards returns the drink cards that make up the drink, for discarding
func (d *DrinkWithPossibleChasers) Cards() []DrinkCard {
	return d.cards
}

// AlcoholModifier returns the total alcohol adjustment for the given drinker
func (d *DrinkWithPossibleChasers) AlcoholModifier(p *Player) int {
	total := 0
	for _, drink := range d.drinks {
		if drink.alcohol != nil {
			total += drink.alcohol(p)
		}
	}

	return total
}

// FortitudeModifier returns the total fortitude adjustment for the given drinker
func (d *DrinkWithPossibleChasers) FortitudeModifier(p *Player) int {
	total := 0
	for _, drink := range d.drinks {
		if drink.fortitude != nil {
			total += drink.fortitude(p)
		}
	}

	return total
}

// Process applies the drink to the drinker
func (d *DrinkWithPossibleChasers) Process(p *Player) {
	p.AddAlcoholContent(d.AlcoholModifier(p))
	p.AddFortitude(d.FortitudeModifier(p))
}

// RevealedDrink is the top of a drink pile turned over. Revealing chases
// drinks as long as the top drink calls for a chaser. Event cards revealed
// while chasing are set aside unprocessed.
type RevealedDrink struct {
	Drink    *DrinkWithPossibleChasers
	Event    DrinkEvent
	SetAside []DrinkCard
}

// RevealDrink turns over the player's drink pile. The second return value is
// false if the pile was empty.
func (p *Player) RevealDrink() (*RevealedDrink, bool) {
	card, ok := p.popDrink()
	if !ok {
		return nil, false
	}

	if event, isEvent := card.IsEvent(); isEvent {
		return &RevealedDrink{Event: event, SetAside: []DrinkCard{card}}, true
	}

	revealed := &RevealedDrink{
		Drink: &DrinkWithPossibleChasers{
			drinks: []*Drink{card.drink},
			cards:  []DrinkCard{card},
		},
	}

	for revealed.Drink.drinks[len(revealed.Drink.drinks)-1].hasChaser {
		chaser, ok := p.popDrink()
		if !ok {
			break
		}

		if _, isEvent := chaser.IsEvent(); isEvent {
			revealed.SetAside = append(revealed.SetAside, chaser)
			continue
		}

		revealed.Drink.drinks = append(revealed.Drink.drinks, chaser.drink)
		revealed.Drink.cards = append(revealed.Drink.cards, chaser)
	}

	return revealed, true
}
