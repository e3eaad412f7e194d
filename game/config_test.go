package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfig(t *testing.T) {
	config := NewGameConfig()

	assert.Equal(t, []int{5, 6, 8}, config.Sizes)
	assert.True(t, config.Wildcard)
	assert.True(t, config.HasSize(6))
	assert.False(t, config.HasSize(7))

	for _, size := range config.Sizes {
		board, err := NewBoard(config.BoardConfig(size, 1))
		require.NoError(t, err)
		assert.Equal(t, size*size, board.NumTiles())
	}
}

func TestLoadGameConfigRejectsOddSizesWithoutWildcard(t *testing.T) {
	_, err := LoadGameConfig([]byte("sizes: [5, 6]\nwildcard: false\n"))
	assert.ErrorIs(t, err, ErrOddCells)

	config, err := LoadGameConfig([]byte("sizes: [4, 6]\nwildcard: false\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, config.Sizes)
}

func TestLoadGameConfigErrors(t *testing.T) {
	tests := map[string]string{
		"no sizes":    "wildcard: true\n",
		"unknown key": "sizes: [6]\ncolour: blue\n",
		"too large":   "sizes: [32]\n",
		"not yaml":    "sizes: [6",
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadGameConfig([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestLabels(t *testing.T) {
	labels := NewGameConfig().Labels

	assert.Equal(t, "Pairs found: 2 | Attempts: 7", labels.StatusLine(Status{PairsFound: 2, Attempts: 7}))
	assert.Equal(t, "Congratulations! You found all pairs in 12 attempts.", labels.CompleteNotice(12))
	assert.Equal(t, "8x8", labels.SizeLabel(8))
}
