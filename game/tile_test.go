package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileHideKeepsMatchedFaceUp(t *testing.T) {
	tile := &Tile{id: 3, value: 7}
	assert.Equal(t, FaceDown, tile.State())

	tile.reveal()
	assert.Equal(t, FaceUp, tile.State())
	tile.hide()
	assert.False(t, tile.IsRevealed())

	tile.reveal()
	tile.match()
	tile.hide()
	assert.True(t, tile.IsRevealed())
	assert.True(t, tile.IsMatched())
	assert.Equal(t, Matched, tile.State())
	assert.False(t, tile.selectable())
}

func TestTileStateString(t *testing.T) {
	tests := []struct {
		state    TileState
		expected string
	}{
		{FaceDown, "face-down"},
		{FaceUp, "face-up"},
		{Matched, "matched"},
		{Wildcard, "wildcard"},
		{TileState(42), "unknown"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.state.String())
	}
}
