package tavern

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// identityRand keeps decks in insertion order
type identityRand struct{}

func (identityRand) Intn(n int) int {
	return n - 1
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testPlayerID(i int) PlayerID {
	return PlayerID(fmt.Sprintf("player-%d", i))
}

func newTestRegistry(playerCount int) (*Registry, []PlayerID) {
	seated := make([]SeatedPlayer, 0, playerCount)
	ids := make([]PlayerID, 0, playerCount)
	for i := 1; i <= playerCount; i++ {
		id := testPlayerID(i)
		ids = append(ids, id)
		seated = append(seated, SeatedPlayer{ID: id, Character: CharacterFiona()})
	}

	return NewRegistry(seated, identityRand{}), ids
}

func newTestLogic(t *testing.T, playerCount int) (*Logic, []PlayerID) {
	t.Helper()

	seated := make([]SeatedPlayer, 0, playerCount)
	ids := make([]PlayerID, 0, playerCount)
	for i := 1; i <= playerCount; i++ {
		id := testPlayerID(i)
		ids = append(ids, id)
		seated = append(seated, SeatedPlayer{ID: id, Character: CharacterFiona()})
	}

	logic, err := NewLogic(testLogger(), seated, identityRand{})
	assert.NoError(t, err)

	return logic, ids
}

func setHand(l *Logic, id PlayerID, cards ...Card) {
	l.registry.Player(id).hand = cards
}
