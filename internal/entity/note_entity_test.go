package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTitle(t *testing.T) {
	note := Note{Title: "Shopping list"}
	assert.Equal(t, "Shopping list", note.DisplayTitle())

	untitled := Note{Title: ""}
	assert.Equal(t, "Untitled", untitled.DisplayTitle())
}

func TestIsDelegate(t *testing.T) {
	note := Note{OwnerId: 1, DelegatedIds: []uint{2, 3}}

	assert.True(t, note.IsDelegate(2))
	assert.True(t, note.IsDelegate(3))
	assert.False(t, note.IsDelegate(1))
	assert.False(t, note.IsDelegate(4))

	empty := Note{OwnerId: 1}
	assert.False(t, empty.IsDelegate(2))
}
