//go:build dynamicarray_debug

package dynamicarray

import "fmt"

func assertIndex(index, size int) {
	if index < 0 || index >= size {
		panic(fmt.Errorf("unchecked access at %d with size %d: %w", index, size, ErrOutOfRange))
	}
}
