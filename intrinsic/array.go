package intrinsic

import "fmt"

// Array is a fixed-length array of a primitive element type. Elements are
// addressed from a lower bound which defaults to zero.
type Array[T any] struct {
	data  []T
	lower int
}

// NewArray returns an array backed by a copy of data with lower bound 0.
func NewArray[T any](data []T) Array[T] {
	return NewArrayWithLower(data, 0)
}

// NewArrayWithLower returns an array backed by a copy of data whose first
// element is addressed by lower.
func NewArrayWithLower[T any](data []T, lower int) Array[T] {
	arr := Array[T]{
		data:  make([]T, len(data)),
		lower: lower,
	}
	copy(arr.data, data)
	return arr
}

// Len returns the number of elements.
func (arr Array[T]) Len() int { return len(arr.data) }

// Lower returns the index of the first element.
func (arr Array[T]) Lower() int { return arr.lower }

// Upper returns the index of the last element. For an empty array Upper is Lower-1.
func (arr Array[T]) Upper() int { return arr.lower + len(arr.data) - 1 }

func (arr Array[T]) At(i int) T {
	return arr.data[arr.offset(i)]
}

func (arr Array[T]) Set(i int, v T) {
	arr.data[arr.offset(i)] = v
}

// Values returns a copy of the elements in index order.
func (arr Array[T]) Values() []T {
	dst := make([]T, len(arr.data))
	copy(dst, arr.data)
	return dst
}

func (arr Array[T]) offset(i int) int {
	off := i - arr.lower
	if off < 0 || off >= len(arr.data) {
		panic(fmt.Sprintf("intrinsic: index %d out of bounds [%d:%d]", i, arr.lower, arr.Upper()))
	}
	return off
}
