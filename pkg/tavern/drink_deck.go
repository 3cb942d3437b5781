package tavern

func plainDrink(name string, alcohol int) *Drink {
	return &Drink{
		name:    name,
		alcohol: func(p *Player) int { return alcohol },
	}
}

func chaserDrink(name string, alcohol int) *Drink {
	return &Drink{
		name:      name,
		alcohol:   func(p *Player) int { return alcohol },
		hasChaser: true,
	}
}

// newDrinkDeck builds the thirty card drink deck the whole table shares
func newDrinkDeck() []DrinkCard {
	cards := make([]DrinkCard, 0, 30)

	addDrink := func(n int, build func() *Drink) {
		for i := 0; i < n; i++ {
			cards = append(cards, newDrinkCard(build()))
		}
	}

	addDrink(4, func() *Drink { return plainDrink("Light Ale", 1) })
	addDrink(4, func() *Drink { return plainDrink("Dark Ale", 1) })
	addDrink(3, func() *Drink { return plainDrink("Wine", 2) })
	addDrink(2, func() *Drink { return plainDrink("Elven Wine", 3) })
	addDrink(2, func() *Drink { return plainDrink("Dragon Breath Ale", 4) })
	addDrink(2, func() *Drink { return chaserDrink("Light Ale with a Chaser", 1) })
	addDrink(2, func() *Drink { return chaserDrink("Dark Ale with a Chaser", 1) })

	addDrink(2, func() *Drink { return plainDrink("Water", -1) })
	addDrink(1, func() *Drink {
		return &Drink{
			name:      "Holy Water",
			alcohol:   func(p *Player) int { return 0 },
			fortitude: func(p *Player) int { return 2 },
		}
	})

	addDrink(2, func() *Drink {
		return &Drink{
			name: "Orcish Rotgut",
			alcohol: func(p *Player) int {
				if p.Character().Race == RaceOrc {
					return 1
				}

				return 3
			},
		}
	})
	addDrink(2, func() *Drink {
		return &Drink{
			name: "Troll Swill",
			alcohol: func(p *Player) int {
				if p.Character().Race == RaceTroll {
					return 1
				}

				return 2
			},
			fortitude: func(p *Player) int {
				if p.Character().Race == RaceTroll {
					return 1
				}

				return -1
			},
		}
	})

	for i := 0; i < 2; i++ {
		cards = append(cards, newDrinkEventCard(DrinkEventDrinkingContest))
	}

	for i := 0; i < 2; i++ {
		cards = append(cards, newDrinkEventCard(DrinkEventRoundOnTheHouse))
	}

	return cards
}
