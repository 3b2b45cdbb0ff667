package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropUser(t *testing.T) {
	assert.Equal(t, []uint{2, 3}, dropUser([]uint{1, 2, 3}, 1))
	assert.Equal(t, []uint{2, 3}, dropUser([]uint{2, 3}, 1))
	assert.Empty(t, dropUser([]uint{1}, 1))
	assert.Empty(t, dropUser(nil, 1))
}

func TestMissingIds(t *testing.T) {
	assert.False(t, missingIds([]uint{1, 2}, 2))
	assert.True(t, missingIds([]uint{1, 2}, 1))
	// Duplicates count once.
	assert.False(t, missingIds([]uint{1, 1, 2}, 2))
}
