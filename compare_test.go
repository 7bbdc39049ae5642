package dynarr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		a := Of(1, 2, 3)
		assert.True(t, Equal(a, a))

		e := New[int]()
		assert.True(t, Equal(e, e))
	})

	t.Run("element-wise", func(t *testing.T) {
		assert.True(t, Equal(Of(1, 2, 3), Of(1, 2, 3)))
		assert.False(t, Equal(Of(1, 2, 3), Of(1, 2, 4)))
		assert.False(t, Equal(Of(1, 2), Of(1, 2, 3)))
		assert.True(t, Equal(New[int](), New[int]()))
	})

	t.Run("capacity does not matter", func(t *testing.T) {
		a := Of(1, 2)
		b := NewWithCapacity[int](Reserve(100))
		b.PushBack(1)
		b.PushBack(2)
		assert.True(t, Equal(a, b))
	})
}

func TestEqualFunc(t *testing.T) {
	a := Of("Go", "ROCKS")
	b := Of("go", "rocks")
	assert.True(t, EqualFunc(a, b, strings.EqualFold))
	assert.False(t, EqualFunc(a, Of("go"), strings.EqualFold))
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b *Array[int]
		want int
	}{
		{"equal", Of(1, 2, 3), Of(1, 2, 3), 0},
		{"both empty", New[int](), New[int](), 0},
		{"less by element", Of(1, 2, 3), Of(1, 3, 0), -1},
		{"greater by element", Of(2), Of(1, 9, 9), 1},
		{"prefix orders first", Of(1, 2), Of(1, 2, 0), -1},
		{"empty orders first", New[int](), Of(0), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b))
			assert.Equal(t, -tc.want, Compare(tc.b, tc.a))
		})
	}
}

func TestRelationalOperators(t *testing.T) {
	lo := Of(1, 2)
	hi := Of(1, 3)

	assert.True(t, Less(lo, hi))
	assert.False(t, Less(hi, lo))
	assert.False(t, Less(lo, lo), "irreflexive")

	assert.True(t, LessEqual(lo, hi))
	assert.True(t, LessEqual(lo, lo))
	assert.False(t, LessEqual(hi, lo))

	assert.True(t, Greater(hi, lo))
	assert.False(t, Greater(lo, lo))

	assert.True(t, GreaterEqual(hi, lo))
	assert.True(t, GreaterEqual(lo, lo))
	assert.False(t, GreaterEqual(lo, hi))
}

func TestLess_StrictWeakOrdering(t *testing.T) {
	arrays := []*Array[int]{
		New[int](),
		Of(0),
		Of(1),
		Of(1, 1),
		Of(1, 2),
		Of(2),
	}
	// arrays is sorted ascending; Less must agree with the index order.
	for i, a := range arrays {
		for j, b := range arrays {
			assert.Equal(t, i < j, Less(a, b), "Less(arrays[%d], arrays[%d])", i, j)
		}
	}
}

func TestCompareFunc(t *testing.T) {
	type point struct{ x, y int }
	byX := func(p, q point) int {
		switch {
		case p.x < q.x:
			return -1
		case p.x > q.x:
			return 1
		}
		return 0
	}

	a := Of(point{1, 5}, point{2, 0})
	b := Of(point{1, 9}, point{3, 0})
	assert.Equal(t, -1, CompareFunc(a, b, byX))
	assert.Equal(t, 0, CompareFunc(a, a, byX))
}
