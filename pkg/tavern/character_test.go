package tavern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacters(t *testing.T) {
	a := assert.New(t)

	characters := Characters()
	a.Len(characters, 4)

	for _, c := range characters {
		a.Len(c.Deck(), 40, "%s should bring a forty card deck", c.Name)
		a.Greater(c.Fortitude, 0)
	}
}

func TestCharacterByName(t *testing.T) {
	a := assert.New(t)

	c := CharacterByName("Gerki")
	a.NotNil(c)
	a.Equal(16, c.Fortitude)

	a.Nil(CharacterByName("Merlin"))
}

func TestNewDrinkDeck(t *testing.T) {
	a := assert.New(t)

	cards := newDrinkDeck()
	a.Len(cards, 30)

	events := 0
	for _, card := range cards {
		if _, ok := card.IsEvent(); ok {
			events++
		}
	}

	a.Equal(4, events)
}

func TestDrinkDeck_raceDependentDrinks(t *testing.T) {
	a := assert.New(t)

	human := newPlayer(CharacterFiona(), 8, identityRand{})

	var rotgut, swill *Drink
	for _, card := range newDrinkDeck() {
		if card.drink == nil {
			continue
		}

		switch card.drink.Name() {
		case "Orcish Rotgut":
			rotgut = card.drink
		case "Troll Swill":
			swill = card.drink
		}
	}

	a.NotNil(rotgut)
	a.NotNil(swill)

	a.Equal(3, rotgut.alcohol(human))
	a.Equal(2, swill.alcohol(human))
	a.Equal(-1, swill.fortitude(human))

	// an orc stomachs their own brew
	orc := newPlayer(&Character{Name: "Grog", Race: RaceOrc, Fortitude: 18, deck: CharacterFiona().deck}, 8, identityRand{})
	a.Equal(1, rotgut.alcohol(orc))
}
