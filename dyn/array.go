package dyn

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Array is an immutable ordered sequence of Values.
type Array struct {
	vals []Value
}

// NewArray returns an Array holding a copy of vals.
func NewArray(vals ...Value) Array {
	return Array{vals: slices.Clone(vals)}
}

// Floats returns an Array of float Values.
func Floats(fs ...float64) Array {
	vals := make([]Value, len(fs))
	for i, f := range fs {
		vals[i] = FromF64(f)
	}
	return Array{vals: vals}
}

func (a Array) Len() int { return len(a.vals) }

// At returns the element at 0-based index i. It panics if i is out of range.
func (a Array) At(i int) Value { return a.vals[i] }

// Append returns a new Array with vals added after the elements of a.
// a itself is left untouched and shares no storage with the result.
func (a Array) Append(vals ...Value) Array {
	return Array{vals: append(slices.Clip(a.vals), vals...)}
}

// Values returns a copy of the elements.
func (a Array) Values() []Value { return slices.Clone(a.vals) }

// All iterates over index and element pairs in ascending index order.
func (a Array) All() iter.Seq2[int, Value] {
	return slices.All(a.vals)
}

// Equal reports whether both arrays hold equal elements in the same order.
func (a Array) Equal(b Array) bool {
	return slices.EqualFunc(a.vals, b.vals, Value.Equal)
}

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		if v.kind == KindString {
			fmt.Fprintf(&sb, "%q", v.str)
		} else {
			sb.WriteString(v.String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// ReduceFunc combines the accumulator acc with the element cur found at
// index of arr and returns the next accumulator.
type ReduceFunc func(arr Array, acc, cur Value, index int) (Value, error)

// ReduceError reports the element at which a reduction stopped.
type ReduceError struct {
	Index int
	Err   error
}

func (e *ReduceError) Error() string {
	return fmt.Sprintf("dyn: reduce at index %d: %v", e.Index, e.Err)
}

func (e *ReduceError) Unwrap() error { return e.Err }

// ReduceCopy folds a from index 0 to Len()-1, threading the accumulator
// through fn starting at seed, and returns the final accumulator. An empty
// array yields seed. The first error returned by fn ends the fold and is
// returned as a *ReduceError.
func (a Array) ReduceCopy(fn ReduceFunc, seed Value) (Value, error) {
	acc := seed
	for i, cur := range a.vals {
		next, err := fn(a, acc, cur, i)
		if err != nil {
			return Value{}, &ReduceError{Index: i, Err: err}
		}
		acc = next
	}
	return acc, nil
}

// SumStep is a ReduceFunc adding each element to the accumulator with Add.
func SumStep(_ Array, acc, cur Value, _ int) (Value, error) {
	return Add(acc, cur)
}
