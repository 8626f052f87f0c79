package dynamicarray

// Clone returns a deep copy: a fresh buffer of the same capacity holding
// copies of the live elements.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	return a.CloneFunc(nil)
}

// CloneFunc is Clone with each element passed through fn, for element types
// whose copy must not share memory (pointers, slices, maps). A nil fn copies
// elements by assignment.
func (a *DynamicArray[T]) CloneFunc(fn func(T) T) *DynamicArray[T] {
	clone := &DynamicArray[T]{size: a.size}
	clone.buf.growTo(a.buf.capacity(), 0)
	if fn == nil {
		copy(clone.buf.slots, a.buf.slots[:a.size])
		return clone
	}
	for i, v := range a.buf.slots[:a.size] {
		clone.buf.slots[i] = fn(v)
	}
	return clone
}

// Move transfers the buffer to a new array in constant time. a is left
// empty and remains usable.
func (a *DynamicArray[T]) Move() *DynamicArray[T] {
	moved := &DynamicArray[T]{buf: a.buf.take(), size: a.size}
	a.size = 0
	return moved
}

// CopyFrom replaces the contents of a with copies of src's elements. When the
// capacities differ a's buffer is reallocated to src's capacity and its old
// elements are dropped.
func (a *DynamicArray[T]) CopyFrom(src *DynamicArray[T]) {
	if a == src {
		return
	}
	if a.buf.capacity() != src.buf.capacity() {
		a.buf.releaseAll()
		a.buf.growTo(src.buf.capacity(), 0)
	} else if a.size > src.size {
		a.buf.vacate(src.size, a.size)
	}
	copy(a.buf.slots, src.buf.slots[:src.size])
	a.size = src.size
}

// MoveFrom releases a's buffer and takes ownership of src's, leaving src
// empty.
func (a *DynamicArray[T]) MoveFrom(src *DynamicArray[T]) {
	if a == src {
		return
	}
	a.buf.releaseAll()
	a.buf = src.buf.take()
	a.size = src.size
	src.size = 0
}
