package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	random = rand.New(rand.NewSource(0)) // nolint:gosec

	for i := 0; i < 10; i++ {
		parts := strings.SplitN(GetRandomName(), " ", 2)
		assert.Len(t, parts, 2)
		assert.Contains(t, adjectives, parts[0])
		assert.Contains(t, patrons, parts[1])
	}
}
