package deepsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf_Nil(t *testing.T) {
	assert.Equal(t, int64(0), Of(nil))
}

func TestOf_String(t *testing.T) {
	// Header (16 on 64-bit) plus the backing bytes.
	assert.Equal(t, int64(16+5), Of("hello"))
}

func TestOf_SliceCountsCapacity(t *testing.T) {
	small := make([]int64, 4, 4)
	large := make([]int64, 4, 64)
	assert.Less(t, Of(small), Of(large), "unused capacity is still allocated")
}

func TestOf_SharedPointerCountedOnce(t *testing.T) {
	type pair struct{ a, b *int64 }
	x := int64(42)
	shared := pair{&x, &x}
	distinct := pair{new(int64), new(int64)}
	assert.Less(t, Of(shared), Of(distinct))
}

func TestOf_GrowsWithContent(t *testing.T) {
	type node struct {
		name string
		next *node
	}
	one := &node{name: "a"}
	two := &node{name: "a", next: &node{name: "b"}}
	assert.Less(t, Of(one), Of(two))
}

func TestOf_PointerCycle(t *testing.T) {
	type node struct {
		next *node
	}
	a := &node{}
	b := &node{next: a}
	a.next = b

	// Must terminate and count each node once.
	assert.Equal(t, Of(a), Of(b))
}
