package tavern

import (
	"github.com/google/uuid"

	"thirstydragon-server/internal/rng"
	"thirstydragon-server/pkg/deck"
)

// PlayerID uniquely identifies a player
type PlayerID string

// NewPlayerID returns a new random player ID
func NewPlayerID() PlayerID {
	return PlayerID(uuid.New().String())
}

const (
	handSize = 7
	statMin  = 0
	statMax  = 20
)

// Player is a single seated player's in-game state
type Player struct {
	character      *Character
	alcoholContent int
	fortitude      int
	gold           int
	deck           *deck.Deck[Card]
	hand           []Card
	drinkPile      []DrinkCard
}

func newPlayer(character *Character, gold int, rand rng.Generator) *Player {
	p := &Player{
		character:      character,
		alcoholContent: 0,
		fortitude:      character.Fortitude,
		gold:           gold,
		deck:           deck.New(character.Deck(), rand),
		hand:           make([]Card, 0, handSize),
	}

	p.DrawToFull()
	return p
}

// Character returns the character the player plays as
func (p *Player) Character() *Character {
	return p.character
}

// DrawToFull draws cards until the hand is full or the deck is exhausted
func (p *Player) DrawToFull() {
	for len(p.hand) < handSize {
		card, ok := p.deck.Draw()
		if !ok {
			return
		}

		p.hand = append(p.hand, card)
	}
}

// Hand returns the player's hand
func (p *Player) Hand() []Card {
	return p.hand
}

// PopCard removes and returns the card at index i
func (p *Player) PopCard(i int) (Card, bool) {
	if i < 0 || i >= len(p.hand) {
		return nil, false
	}

	card := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return card, true
}

// ReturnCard puts a card back in the hand at index i. This undoes a PopCard
// when the card turned out not to be playable.
func (p *Player) ReturnCard(card Card, i int) {
	if i < 0 {
		i = 0
	}

	if i > len(p.hand) {
		i = len(p.hand)
	}

	p.hand = append(p.hand, nil)
	copy(p.hand[i+1:], p.hand[i:])
	p.hand[i] = card
}

// DiscardCard places a card on the player's discard pile
func (p *Player) DiscardCard(card Card) {
	p.deck.Discard(card)
}

// DrawPileSize returns the number of cards left in the player's draw pile
func (p *Player) DrawPileSize() int {
	return p.deck.DrawPileSize()
}

// DiscardPileSize returns the number of cards in the player's discard pile
func (p *Player) DiscardPileSize() int {
	return p.deck.DiscardPileSize()
}

// Gold returns the player's gold
func (p *Player) Gold() int {
	return p.gold
}

// AddGold adjusts the player's gold by amount, which may be negative
func (p *Player) AddGold(amount int) {
	p.gold += amount
	if p.gold < 0 {
		p.gold = 0
	}
}

// Fortitude returns the player's fortitude
func (p *Player) Fortitude() int {
	return p.fortitude
}

// AddFortitude adjusts the player's fortitude by amount, clamped to 0-20
func (p *Player) AddFortitude(amount int) {
	p.fortitude = clampStat(p.fortitude + amount)
}

// AlcoholContent returns the player's alcohol content
func (p *Player) AlcoholContent() int {
	return p.alcoholContent
}

// AddAlcoholContent adjusts the player's alcohol content by amount, clamped to 0-20
func (p *Player) AddAlcoholContent(amount int) {
	p.alcoholContent = clampStat(p.alcoholContent + amount)
}

// IsOutOfGame returns true once the player is broke or passed out
func (p *Player) IsOutOfGame() bool {
	return p.gold <= 0 || p.alcoholContent >= p.fortitude
}

// AddDrinkToPile places a drink card on top of the player's drink pile
func (p *Player) AddDrinkToPile(card DrinkCard) {
	p.drinkPile = append(p.drinkPile, card)
}

// DrinkPileSize returns the number of cards in the player's drink pile
func (p *Player) DrinkPileSize() int {
	return len(p.drinkPile)
}

// popDrink removes the top card of the drink pile
func (p *Player) popDrink() (DrinkCard, bool) {
	if len(p.drinkPile) == 0 {
		return DrinkCard{}, false
	}

	card := p.drinkPile[len(p.drinkPile)-1]
	p.drinkPile = p.drinkPile[:len(p.drinkPile)-1]
	return card, true
}

func clampStat(n int) int {
	if n < statMin {
		return statMin
	}

	if n > statMax {
		return statMax
	}

	return n
}
