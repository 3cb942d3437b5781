package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// identityRand keeps the deck in insertion order
type identityRand struct{}

func (identityRand) Intn(n int) int {
	return n - 1
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New([]string{"a", "b", "c"}, identityRand{})
	a.Equal(3, d.DrawPileSize())

	card, ok := d.Draw()
	a.True(ok)
	a.Equal("c", card)

	card, ok = d.Draw()
	a.True(ok)
	a.Equal("b", card)

	card, ok = d.Draw()
	a.True(ok)
	a.Equal("a", card)
	a.Equal(0, d.DrawPileSize())

	// everything is in flight
	_, ok = d.Draw()
	a.False(ok)
}

func TestDeck_reshufflesDiscards(t *testing.T) {
	a := assert.New(t)

	d := New([]int{1, 2}, identityRand{})

	first, _ := d.Draw()
	second, _ := d.Draw()
	a.Equal(0, d.DrawPileSize())

	d.Discard(first)
	a.Equal(1, d.DiscardPileSize())

	card, ok := d.Draw()
	a.True(ok)
	a.Equal(first, card)
	a.Equal(0, d.DiscardPileSize())

	// second is still in flight
	_, ok = d.Draw()
	a.False(ok)

	d.Discard(second)
	d.Discard(first)
	card, ok = d.Draw()
	a.True(ok)
	a.Equal(first, card)
}

func TestDeck_empty(t *testing.T) {
	d := New([]string{}, identityRand{})
	_, ok := d.Draw()
	assert.False(t, ok)
}
