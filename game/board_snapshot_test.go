package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	for _, config := range []BoardConfig{
		{Size: 6, Seed: 7},
		{Size: 5, Wildcard: true, Seed: 8},
	} {
		board, err := NewBoard(config)
		require.NoError(t, err)

		serialized := board.Snapshot().Serialize()
		snapshot, err := LoadSnapshot(serialized)
		require.NoError(t, err)

		restored, err := snapshot.CreateBoard()
		require.NoError(t, err)

		assert.Equal(t, board.Values(), restored.Values())
		assert.Equal(t, board.Seed(), restored.Seed())
		assert.Equal(t, board.TotalPairs(), restored.TotalPairs())
	}
}

func TestSnapshotSerialize(t *testing.T) {
	board := boardFromRows(t,
		"1 *  2",
		"3 4 1",
		"2 4 3",
	)

	snapshot := board.Snapshot()
	assert.Equal(t, int64(1), snapshot.Seed)
	assert.Equal(t, "1 * 2\n3 4 1\n2 4 3", snapshot.SerializedBoard)
	assert.Equal(t, Wildcard, board.TileAt(1, 0).State())
}

func TestSnapshotRejectsBadBoards(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected error
	}{
		{"ragged", "1 2\n1", ErrBadSnapshot},
		{"not a number", "1 x\n1 x", ErrBadSnapshot},
		{"zero value", "0 0\n1 1", ErrBadSnapshot},
		{"triple", "1 1\n1 2", ErrBadSnapshot},
		{"gap in values", "1 1\n3 3", ErrBadSnapshot},
		{"wildcard on even board", "1 1\n2 *", ErrBadSnapshot},
		{"missing wildcard", "1 1 2\n2 3 3\n4 4 5", ErrBadSnapshot},
		{"too small", "*", ErrSizeTooSmall},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot := &BoardSnapshot{SerializedBoard: test.board}
			board, err := snapshot.CreateBoard()
			assert.Nil(t, board)
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestLoadSnapshotMalformedYAML(t *testing.T) {
	_, err := LoadSnapshot("seed: [unterminated")
	assert.Error(t, err)
}
