package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(4))

	set.Add(4)
	set.Remove(1)
	set.Remove(10)
	assert.Equal(t, NewSet(2, 3, 4), set)

	assert.Equal(t, NewSet(2, 4), set.Difference(NewSet(3, 5)))
	assert.Empty(t, Set[int](nil).Difference(set))
}
