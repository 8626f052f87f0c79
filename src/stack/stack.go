package stack

import (
	"errors"

	"github.com/hyperbolic-timechamber/dynamicarray-go/src/dynamicarray"
)

var ErrEmptyStack = errors.New("Stack: empty stack")

// Stack is a LIFO stack whose top is the back of a DynamicArray.
type Stack[T any] struct {
	data *dynamicarray.DynamicArray[T]
}

func New[T any]() *Stack[T] {
	return &Stack[T]{data: dynamicarray.New[T]()}
}

func (s *Stack[T]) Push(value T) {
	s.data.PushBack(value)
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.data.IsEmpty() {
		return zero, ErrEmptyStack
	}
	value := s.data.Back()
	s.data.PopBack()
	return value, nil
}

func (s *Stack[T]) Top() (T, error) {
	var zero T
	if s.data.IsEmpty() {
		return zero, ErrEmptyStack
	}
	return s.data.Back(), nil
}

func (s *Stack[T]) Size() int {
	return s.data.Size()
}

func (s *Stack[T]) IsEmpty() bool {
	return s.data.IsEmpty()
}

// Clear empties the stack and releases its storage.
func (s *Stack[T]) Clear() {
	s.data.Clear()
}

func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{data: s.data.Clone()}
}
