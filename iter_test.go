package dynarr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArray_All(t *testing.T) {
	a := Of("a", "b", "c")

	var idx []int
	var got []string
	for i, v := range a.All() {
		idx = append(idx, i)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	t.Run("early break", func(t *testing.T) {
		n := 0
		for range a.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("live range only", func(t *testing.T) {
		b := NewWithCapacity[int](Reserve(10))
		b.PushBack(1)
		n := 0
		for range b.All() {
			n++
		}
		assert.Equal(t, 1, n)
	})

	t.Run("empty array yields nothing", func(t *testing.T) {
		for range New[int]().All() {
			t.Fatal("unexpected element")
		}
	})
}

func TestArray_Values(t *testing.T) {
	a := Of(3, 1, 4)
	var got []int
	for v := range a.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 1, 4}, got)
}

func TestArray_Slice(t *testing.T) {
	a := NewWithCapacity[int](Reserve(4))
	a.PushBack(1)
	a.PushBack(2)

	s := a.Slice()
	assert.Equal(t, []int{1, 2}, s)

	t.Run("writes are visible in the array", func(t *testing.T) {
		s[0] = 9
		assert.Equal(t, 9, a.Get(0))
	})

	t.Run("empty array yields empty slice", func(t *testing.T) {
		assert.Len(t, New[int]().Slice(), 0)
	})
}
