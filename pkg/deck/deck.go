package deck

import (
	"thirstydragon-server/internal/rng"
)

// Deck is an auto-shuffling pile of cards. Cards are drawn from the top of the
// draw pile and spent cards land on the discard pile. When the draw pile runs
// dry, the discard pile is shuffled back in, so Draw only comes up empty when
// every card in the deck is still in flight.
type Deck[T any] struct {
	drawPile    []T
	discardPile []T
	rand        rng.Generator
}

// New returns a new shuffled deck built from the provided cards
func New[T any](cards []T, rand rng.Generator) *Deck[T] {
	d := &Deck[T]{
		drawPile:    append(make([]T, 0, len(cards)), cards...),
		discardPile: make([]T, 0, len(cards)),
		rand:        rand,
	}

	d.shuffle(d.drawPile)
	return d
}

// Draw returns the next card.
// The second return value is false if there's no card to draw.
func (d *Deck[T]) Draw() (T, bool) {
	if len(d.drawPile) == 0 {
		d.drawPile = append(d.drawPile, d.discardPile...)
		d.discardPile = d.discardPile[:0]
		d.shuffle(d.drawPile)
	}

	if len(d.drawPile) == 0 {
		var zero T
		return zero, false
	}

	card := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return card, true
}

// Discard places a card on top of the discard pile
func (d *Deck[T]) Discard(card T) {
	d.discardPile = append(d.discardPile, card)
}

// DrawPileSize returns the number of cards left in the draw pile
func (d *Deck[T]) DrawPileSize() int {
	return len(d.drawPile)
}

// DiscardPileSize returns the number of cards in the discard pile
func (d *Deck[T]) DiscardPileSize() int {
	return len(d.discardPile)
}

func (d *Deck[T]) shuffle(cards []T) {
	for j := len(cards) - 1; j > 0; j-- {
		i := d.rand.Intn(j + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
