package circular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], Index(i, n))
	}
}

func TestListWraps(t *testing.T) {
	l := NewList(10, 20, 30)
	assert.Equal(t, 30, l.At(-1))
	assert.Equal(t, 10, l.At(3))
	assert.Equal(t, 20, l.At(-5))

	l.Set(-1, 33)
	assert.Equal(t, []int{10, 20, 33}, l.Items())
}

func TestListInsertAndRemove(t *testing.T) {
	l := NewList("a", "c")
	l.Insert(1, "b")
	l.Insert(l.Len(), "d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, l.Items())

	assert.Equal(t, "d", l.RemoveAt(-1))
	assert.Equal(t, "a", l.RemoveAt(0))
	assert.Equal(t, []string{"b", "c"}, l.Items())

	l.Reverse()
	assert.Equal(t, []string{"c", "b"}, l.Items())
	l.Clear()
	assert.Equal(t, 0, l.Len())
}

func TestListItemsIsACopy(t *testing.T) {
	l := NewList(1, 2)
	items := l.Items()
	items[0] = 99
	assert.Equal(t, 1, l.At(0))
}

func TestEmptyListPanics(t *testing.T) {
	var l List[int]
	assert.Panics(t, func() { l.At(0) })
}
