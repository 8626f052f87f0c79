package binaryheap

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/hyperbolic-timechamber/dynamicarray-go/src/dynamicarray"
)

var ErrEmptyHeap = errors.New("BinaryHeap: heap is empty")

// BinaryHeap is a min-heap laid out implicitly in a DynamicArray: the
// children of slot i live at 2i+1 and 2i+2.
type BinaryHeap[T constraints.Ordered] struct {
	data *dynamicarray.DynamicArray[T]
}

func New[T constraints.Ordered]() *BinaryHeap[T] {
	return &BinaryHeap[T]{data: dynamicarray.New[T]()}
}

// FromSlice builds a heap from a copy of arr in O(n).
func FromSlice[T constraints.Ordered](arr []T) *BinaryHeap[T] {
	h := &BinaryHeap[T]{data: dynamicarray.FromSlice(arr)}
	for i := h.data.Size()/2 - 1; i >= 0; i-- {
		h.heapifyDown(i)
	}
	return h
}

func (h *BinaryHeap[T]) Push(value T) {
	h.data.PushBack(value)
	h.heapifyUp(h.data.Size() - 1)
}

func (h *BinaryHeap[T]) Pop() (T, error) {
	var zero T
	if h.data.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	min := h.data.Front()
	h.data.Set(0, h.data.Back())
	h.data.PopBack()
	if !h.data.IsEmpty() {
		h.heapifyDown(0)
	}
	return min, nil
}

func (h *BinaryHeap[T]) Peek() (T, error) {
	var zero T
	if h.data.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	return h.data.Front(), nil
}

func (h *BinaryHeap[T]) Size() int {
	return h.data.Size()
}

func (h *BinaryHeap[T]) IsEmpty() bool {
	return h.data.IsEmpty()
}

func (h *BinaryHeap[T]) Clear() {
	h.data.Clear()
}

func (h *BinaryHeap[T]) Clone() *BinaryHeap[T] {
	return &BinaryHeap[T]{data: h.data.Clone()}
}

func (h *BinaryHeap[T]) swap(i, j int) {
	a, b := h.data.Ref(i), h.data.Ref(j)
	*a, *b = *b, *a
}

func (h *BinaryHeap[T]) heapifyUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data.Get(i) >= h.data.Get(parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *BinaryHeap[T]) heapifyDown(i int) {
	n := h.data.Size()
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && h.data.Get(left) < h.data.Get(smallest) {
			smallest = left
		}
		if right < n && h.data.Get(right) < h.data.Get(smallest) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}
