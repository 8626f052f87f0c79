package dynamicarray

import "errors"

var (
	// ErrOutOfRange is returned by the checked accessors (At, SetAt) when the
	// index is outside [0, Size()). Insert panics with it on a bad position, and
	// so do the unchecked accessors when built with the dynamicarray_debug tag.
	ErrOutOfRange = errors.New("DynamicArray: index out of range")

	// ErrNegativeSize is the panic value for Resize with a negative length.
	ErrNegativeSize = errors.New("DynamicArray: negative size")

	// ErrCapacityOverflow is the panic value when doubling the capacity would
	// overflow int.
	ErrCapacityOverflow = errors.New("DynamicArray: capacity overflow")
)
