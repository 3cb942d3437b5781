package tavern

// Race is a character's race, which some drinks care about
type Race string

// Race constants
const (
	RaceHuman Race = "human"
	RaceElf   Race = "elf"
	RaceDwarf Race = "dwarf"
	RaceOrc   Race = "orc"
	RaceTroll Race = "troll"
)

// Character is a playable tavern patron. Each character brings their own
// forty card deck.
type Character struct {
	Name      string
	Race      Race
	Fortitude int
	deck      func() []Card
}

// Deck returns a fresh copy of the character's deck
func (c *Character) Deck() []Card {
	return c.deck()
}

// Characters returns every playable character
func Characters() []*Character {
	return []*Character{
		CharacterFiona(),
		CharacterZot(),
		CharacterDeirdre(),
		CharacterGerki(),
	}
}

// CharacterByName returns the character with the given name, or nil
func CharacterByName(name string) *Character {
	for _, c := range Characters() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

// CharacterFiona is a brawler who pushes other people around
func CharacterFiona() *Character {
	return &Character{
		Name:      "Fiona",
		Race:      RaceHuman,
		Fortitude: 20,
		deck: func() []Card {
			cards := make([]Card, 0, 40)
			add := func(n int, build func() Card) {
				for i := 0; i < n; i++ {
					cards = append(cards, build())
				}
			}

			add(5, func() Card { return changeFortitudeCard("A round of sparring, loser drinks!", -2) })
			add(3, func() Card { return changeAllOthersFortitudeCard("Bar brawl!", -1) })
			add(4, func() Card { return gainFortitudeCard("I've had worse bruises", 1) })
			add(4, func() Card { return ignoreDirectedCard("Luckily, I was wearing my armor") })
			add(3, func() Card { return iDontThinkSoCard() })
			add(4, func() Card { return gamblingImInCard() })
			add(2, func() Card { return iRaiseCard() })
			add(2, func() Card { return winningHandCard() })
			add(2, func() Card { return wenchBringDrinksCard() })
			add(2, func() Card { return wenchTipCard() })
			add(3, func() Card { return ignoreDrinkCard("I already have a drink, thanks") })
			add(3, func() Card { return leaveGamblingRoundCard("I should quit while I'm ahead") })
			add(3, func() Card {
				return combinedInterruptCard(
					"Any fight is a good fight",
					ignoreDirectedCard("Any fight is a good fight"),
					ignoreDrinkCard("Any fight is a good fight"),
				)
			})

			return cards
		},
	}
}

// CharacterZot is a wizard with ways around most trouble
func CharacterZot() *Character {
	return &Character{
		Name:      "Zot",
		Race:      RaceHuman,
		Fortitude: 18,
		deck: func() []Card {
			cards := make([]Card, 0, 40)
			add := func(n int, build func() Card) {
				for i := 0; i < n; i++ {
					cards = append(cards, build())
				}
			}

			add(5, func() Card { return changeFortitudeCard("Pook wants to sit in your lap", -2) })
			add(3, func() Card { return changeAllOthersFortitudeCard("A demonstration of true power", -1) })
			add(3, func() Card { return gainFortitudeCard("A restorative incantation", 2) })
			add(5, func() Card { return ignoreDirectedCard("A simple deflection spell") })
			add(4, func() Card { return iDontThinkSoCard() })
			add(4, func() Card { return gamblingImInCard() })
			add(2, func() Card { return iRaiseCard() })
			add(2, func() Card { return winningHandCard() })
			add(2, func() Card { return wenchBringDrinksCard() })
			add(2, func() Card { return wenchTipCard() })
			add(4, func() Card { return ignoreDrinkCard("Pook is thirstier than I am") })
			add(4, func() Card { return leaveGamblingRoundCard("I foresee a losing hand") })

			return cards
		},
	}
}

// CharacterDeirdre is a priestess who mends herself and drains everyone else
func CharacterDeirdre() *Character {
	return &Character{
		Name:      "Deirdre",
		Race:      RaceHuman,
		Fortitude: 18,
		deck: func() []Card {
			cards := make([]Card, 0, 40)
			add := func(n int, build func() Card) {
				for i := 0; i < n; i++ {
					cards = append(cards, build())
				}
			}

			add(4, func() Card { return changeFortitudeCard("My goddess frowns upon you", -2) })
			add(3, func() Card { return changeAllOthersFortitudeCard("Repent, all of you!", -1) })
			add(6, func() Card { return gainFortitudeCard("A blessing of restoration", 2) })
			add(3, func() Card { return ignoreDirectedCard("My faith protects me") })
			add(3, func() Card { return iDontThinkSoCard() })
			add(4, func() Card { return gamblingImInCard() })
			add(2, func() Card { return iRaiseCard() })
			add(2, func() Card { return winningHandCard() })
			add(3, func() Card { return wenchBringDrinksCard() })
			add(2, func() Card { return wenchTipCard() })
			add(4, func() Card { return ignoreDrinkCard("Water is all I need") })
			add(4, func() Card { return leaveGamblingRoundCard("Gambling is a vice") })

			return cards
		},
	}
}

// CharacterGerki is a sneak thief who cheats at everything
func CharacterGerki() *Character {
	return &Character{
		Name:      "Gerki",
		Race:      RaceHuman,
		Fortitude: 16,
		deck: func() []Card {
			cards := make([]Card, 0, 40)
			add := func(n int, build func() Card) {
				for i := 0; i < n; i++ {
					cards = append(cards, build())
				}
			}

			add(4, func() Card { return changeFortitudeCard("A little something in your drink", -2) })
			add(2, func() Card { return changeAllOthersFortitudeCard("Caltrops on the floor", -1) })
			add(3, func() Card { return gainFortitudeCard("A nip from my hidden flask", 1) })
			add(3, func() Card { return ignoreDirectedCard("You can't hit what you can't see") })
			add(3, func() Card { return iDontThinkSoCard() })
			add(5, func() Card { return gamblingImInCard() })
			add(3, func() Card { return iRaiseCard() })
			add(2, func() Card { return winningHandCard() })
			add(4, func() Card { return gamblingCheatCard("I just found this fifth ace") })
			add(2, func() Card { return wenchBringDrinksCard() })
			add(3, func() Card { return wenchTipCard() })
			add(3, func() Card { return ignoreDrinkCard("Sleight of hand, empty tankard") })
			add(3, func() Card { return leaveGamblingRoundCard("Time to slip away") })

			return cards
		},
	}
}
