package dynamicarray

import (
	"fmt"
	"math"
)

// buffer is the exclusively owned backing store of a DynamicArray. Its length
// is the array's capacity. Capacity only changes through growTo (upward, to an
// absolute target) and releaseAll (down to nothing).
type buffer[T any] struct {
	slots []T
}

func (b *buffer[T]) capacity() int {
	return len(b.slots)
}

// growTo reallocates to exactly target slots, moving the first live elements
// into the new storage. It reports whether a reallocation happened.
func (b *buffer[T]) growTo(target, live int) bool {
	if target <= len(b.slots) {
		return false
	}
	slots := make([]T, target)
	copy(slots, b.slots[:live])
	b.slots = slots
	return true
}

func (b *buffer[T]) releaseAll() {
	b.slots = nil
}

// take hands the storage to the caller and leaves b empty.
func (b *buffer[T]) take() buffer[T] {
	owned := *b
	b.slots = nil
	return owned
}

// vacate zeroes slots [from, to) so the collector does not keep stale
// elements reachable.
func (b *buffer[T]) vacate(from, to int) {
	clear(b.slots[from:to])
}

// nextCapacity is the growth policy: double, with a floor of 1.
func nextCapacity(current int) int {
	if current == 0 {
		return 1
	}
	if current > math.MaxInt/2 {
		panic(fmt.Errorf("grow past %d slots: %w", current, ErrCapacityOverflow))
	}
	return current * 2
}
