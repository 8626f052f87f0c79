// Package dynamicarray provides DynamicArray, a generic contiguous sequence
// with amortized O(1) append and capacity managed separately from length.
//
// Growth doubles the capacity (starting at 1) and moves every live element
// into a freshly allocated buffer. Capacity never shrinks implicitly: PopBack,
// Erase, Reserve and a shrinking Resize keep the buffer. Only Clear (which
// releases it) and ShrinkToFit reduce it.
//
// Access comes in two flavours:
//
//	At, SetAt          checked, return ErrOutOfRange
//	Get, Set, Ref,
//	Front, Back        unchecked, the caller guarantees the index is live
//
// Building with -tags dynamicarray_debug turns the unchecked accessors into
// asserting ones. Insert always panics on a position outside [0, Size()].
// PopBack on an empty array and Erase with an out-of-range index are no-ops.
//
// Ownership: a DynamicArray owns its buffer exclusively. Clone and CopyFrom
// duplicate the live elements; Move and MoveFrom hand the buffer over in
// constant time and leave the source empty but usable. Pointers from Ref and
// slices from Data are invalidated by anything that reallocates or releases
// the buffer.
//
// A DynamicArray is not safe for concurrent use.
package dynamicarray
