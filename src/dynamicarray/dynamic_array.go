package dynamicarray

import "fmt"

// DynamicArray is a contiguous, growable sequence of T. It owns its backing
// buffer exclusively, so it must be passed by pointer: copying the struct
// value would alias the buffer. Use Clone or Move to duplicate or transfer it.
type DynamicArray[T any] struct {
	buf  buffer[T]
	size int
}

func New[T any](opts ...Option) *DynamicArray[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	a := &DynamicArray[T]{}
	a.buf.growTo(o.capacity, 0)
	return a
}

func NewWithSize[T any](size int) *DynamicArray[T] {
	a := &DynamicArray[T]{}
	if size <= 0 {
		return a
	}
	a.buf.growTo(size, 0)
	a.size = size
	return a
}

func NewFilled[T any](size int, value T) *DynamicArray[T] {
	a := NewWithSize[T](size)
	for i := range a.size {
		a.buf.slots[i] = value
	}
	return a
}

// FromSlice copies s into a new array whose capacity equals len(s).
func FromSlice[T any](s []T) *DynamicArray[T] {
	a := NewWithSize[T](len(s))
	copy(a.buf.slots, s)
	return a
}

// At is the checked accessor.
func (a *DynamicArray[T]) At(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, fmt.Errorf("at %d with size %d: %w", index, a.size, ErrOutOfRange)
	}
	return a.buf.slots[index], nil
}

func (a *DynamicArray[T]) SetAt(index int, value T) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("set at %d with size %d: %w", index, a.size, ErrOutOfRange)
	}
	a.buf.slots[index] = value
	return nil
}

// Get, Set and Ref skip the logical bounds check: the caller guarantees
// 0 <= index < Size().
func (a *DynamicArray[T]) Get(index int) T {
	assertIndex(index, a.size)
	return a.buf.slots[index]
}

func (a *DynamicArray[T]) Set(index int, value T) {
	assertIndex(index, a.size)
	a.buf.slots[index] = value
}

// Ref returns a pointer into the buffer. It is invalidated by any operation
// that reallocates or releases the buffer.
func (a *DynamicArray[T]) Ref(index int) *T {
	assertIndex(index, a.size)
	return &a.buf.slots[index]
}

func (a *DynamicArray[T]) Front() T {
	assertIndex(0, a.size)
	return a.buf.slots[0]
}

func (a *DynamicArray[T]) Back() T {
	assertIndex(a.size-1, a.size)
	return a.buf.slots[a.size-1]
}

// Data returns the live elements. The slice shares the buffer and is capped
// at Size(), so appending to it never writes into the array's spare slots.
func (a *DynamicArray[T]) Data() []T {
	if a.size == 0 {
		return nil
	}
	return a.buf.slots[:a.size:a.size]
}

func (a *DynamicArray[T]) Size() int {
	return a.size
}

func (a *DynamicArray[T]) Capacity() int {
	return a.buf.capacity()
}

func (a *DynamicArray[T]) IsEmpty() bool {
	return a.size == 0
}

func (a *DynamicArray[T]) String() string {
	return fmt.Sprint(a.buf.slots[:a.size])
}

// Reserve makes room for at least newCap elements without touching the live
// ones. It never shrinks.
func (a *DynamicArray[T]) Reserve(newCap int) {
	a.buf.growTo(newCap, a.size)
}

func (a *DynamicArray[T]) PushBack(value T) {
	if a.size == a.buf.capacity() {
		a.buf.growTo(nextCapacity(a.buf.capacity()), a.size)
	}
	a.buf.slots[a.size] = value
	a.size++
}

// Append pushes values in order. The buffer is grown once, to the capacity
// the equivalent sequence of PushBack calls would reach.
func (a *DynamicArray[T]) Append(values ...T) {
	need := a.size + len(values)
	if need > a.buf.capacity() {
		target := a.buf.capacity()
		for target < need {
			target = nextCapacity(target)
		}
		a.buf.growTo(target, a.size)
	}
	copy(a.buf.slots[a.size:need], values)
	a.size = need
}

// PopBack removes the last element. It is a no-op on an empty array.
func (a *DynamicArray[T]) PopBack() {
	if a.size == 0 {
		return
	}
	a.size--
	a.buf.vacate(a.size, a.size+1)
}

// Insert places value at index, shifting [index, Size()) up by one.
// It panics unless 0 <= index <= Size().
func (a *DynamicArray[T]) Insert(index int, value T) {
	if index < 0 || index > a.size {
		panic(fmt.Errorf("insert at %d with size %d: %w", index, a.size, ErrOutOfRange))
	}
	if a.size == a.buf.capacity() {
		a.buf.growTo(nextCapacity(a.buf.capacity()), a.size)
	}
	copy(a.buf.slots[index+1:a.size+1], a.buf.slots[index:a.size])
	a.buf.slots[index] = value
	a.size++
}

// Erase removes the element at index, shifting the tail down by one.
// Out-of-range indices are ignored.
func (a *DynamicArray[T]) Erase(index int) {
	if index < 0 || index >= a.size {
		return
	}
	copy(a.buf.slots[index:a.size-1], a.buf.slots[index+1:a.size])
	a.size--
	a.buf.vacate(a.size, a.size+1)
}

// Resize sets the length to newSize. New slots hold the zero value.
func (a *DynamicArray[T]) Resize(newSize int) {
	var zero T
	a.ResizeFill(newSize, zero)
}

// ResizeFill sets the length to newSize, filling new slots with value.
// Shrinking keeps the capacity.
func (a *DynamicArray[T]) ResizeFill(newSize int, value T) {
	switch {
	case newSize < 0:
		panic(fmt.Errorf("resize to %d: %w", newSize, ErrNegativeSize))
	case newSize == a.size:
		return
	case newSize < a.size:
		a.buf.vacate(newSize, a.size)
	default:
		a.buf.growTo(newSize, a.size)
		for i := a.size; i < newSize; i++ {
			a.buf.slots[i] = value
		}
	}
	a.size = newSize
}

// Clear releases the buffer, leaving the array as if freshly built by New.
func (a *DynamicArray[T]) Clear() {
	a.buf.releaseAll()
	a.size = 0
}

// ShrinkToFit reallocates so that Capacity() == Size().
func (a *DynamicArray[T]) ShrinkToFit() {
	if a.size == a.buf.capacity() {
		return
	}
	var fitted buffer[T]
	fitted.growTo(a.size, 0)
	copy(fitted.slots, a.buf.slots[:a.size])
	a.buf.releaseAll()
	a.buf = fitted
}
