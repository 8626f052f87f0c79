package dynamicarray

import (
	"iter"

	"golang.org/x/exp/slices"
)

// All yields index/value pairs front to back.
func (a *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf.slots[i]) {
				return
			}
		}
	}
}

func (a *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.buf.slots[i]) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (a *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if !yield(i, a.buf.slots[i]) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same elements in the same order.
// Capacity is not compared.
func Equal[T comparable](a, b *DynamicArray[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// Index returns the position of the first element equal to v, or -1.
func Index[T comparable](a *DynamicArray[T], v T) int {
	return slices.Index(a.Data(), v)
}

func Contains[T comparable](a *DynamicArray[T], v T) bool {
	return slices.Contains(a.Data(), v)
}
