package binaryheap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/hyperbolic-timechamber/dynamicarray-go/src/binaryheap"
)

func drain[T int | float64 | string](t *testing.T, h *binaryheap.BinaryHeap[T]) []T {
	t.Helper()
	var out []T
	for !h.IsEmpty() {
		v, err := h.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestNewHeapIsEmpty(t *testing.T) {
	h := binaryheap.New[int]()
	require.Equal(t, 0, h.Size())
	require.True(t, h.IsEmpty())
}

func TestPeekAndPopOnEmptyHeap(t *testing.T) {
	h := binaryheap.New[int]()
	_, err := h.Peek()
	require.ErrorIs(t, err, binaryheap.ErrEmptyHeap)
	_, err = h.Pop()
	require.ErrorIs(t, err, binaryheap.ErrEmptyHeap)
}

func TestPushKeepsMinimumOnTop(t *testing.T) {
	cases := map[string][]int{
		"ascending":  {1, 2, 3, 4, 5},
		"descending": {5, 4, 3, 2, 1},
		"random":     {7, 3, 9, 1, 4, 8},
		"duplicates": {3, 1, 3, 1, 2},
		"negative":   {-3, 5, -10, 0},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			h := binaryheap.New[int]()
			for _, v := range values {
				h.Push(v)
			}
			require.Equal(t, len(values), h.Size())

			top, err := h.Peek()
			require.NoError(t, err)
			require.Equal(t, slices.Min(values), top)

			sorted := slices.Clone(values)
			slices.Sort(sorted)
			require.Equal(t, sorted, drain(t, h))
		})
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	h := binaryheap.New[int]()
	h.Push(10)
	h.Push(5)
	for range 3 {
		v, err := h.Peek()
		require.NoError(t, err)
		require.Equal(t, 5, v)
	}
	require.Equal(t, 2, h.Size())
}

func TestFromSlice(t *testing.T) {
	arr := []int{5, 2, 8, 1, 9, 3}
	original := slices.Clone(arr)

	h := binaryheap.FromSlice(arr)
	require.Equal(t, len(arr), h.Size())
	require.Equal(t, original, arr, "FromSlice must not modify its input")

	sorted := slices.Clone(arr)
	slices.Sort(sorted)
	require.Equal(t, sorted, drain(t, h))
}

func TestFromEmptySlice(t *testing.T) {
	h := binaryheap.FromSlice([]int{})
	require.True(t, h.IsEmpty())
	h.Push(1)
	require.Equal(t, 1, h.Size())
}

func TestClear(t *testing.T) {
	h := binaryheap.FromSlice([]int{3, 1, 2})
	h.Clear()
	require.True(t, h.IsEmpty())
	_, err := h.Peek()
	require.ErrorIs(t, err, binaryheap.ErrEmptyHeap)

	h.Push(4)
	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

func TestCloneCreatesIndependentCopy(t *testing.T) {
	h := binaryheap.FromSlice([]int{4, 2, 6})
	clone := h.Clone()

	h.Push(1)
	_, _ = h.Pop()
	_, _ = h.Pop()

	require.Equal(t, []int{2, 4, 6}, drain(t, clone))
	require.Equal(t, 2, h.Size())
}

func TestWorksWithFloatsAndStrings(t *testing.T) {
	f := binaryheap.FromSlice([]float64{2.5, -1.5, 0.25})
	require.Equal(t, []float64{-1.5, 0.25, 2.5}, drain(t, f))

	s := binaryheap.New[string]()
	for _, w := range []string{"pear", "apple", "fig"} {
		s.Push(w)
	}
	require.Equal(t, []string{"apple", "fig", "pear"}, drain(t, s))
}

func TestManyPushPopCycles(t *testing.T) {
	h := binaryheap.New[int]()
	for cycle := 0; cycle < 100; cycle++ {
		h.Push(cycle * 3)
		h.Push(cycle * 2)
		h.Push(cycle)
		_, err := h.Pop()
		require.NoError(t, err)
	}
	require.Equal(t, 200, h.Size())
	require.True(t, slices.IsSorted(drain(t, h)))
}

func TestRandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 1000)
	h := binaryheap.New[int]()
	for i := range values {
		values[i] = rng.Intn(500) - 250
		h.Push(values[i])
	}
	slices.Sort(values)
	require.Equal(t, values, drain(t, h))
}
