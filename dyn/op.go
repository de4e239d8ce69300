package dyn

import (
	"errors"
	"math"
	"math/bits"
)

var (
	// ErrKindMismatch is returned when operands of different kinds have no
	// defined coercion, for example a string and a number.
	ErrKindMismatch = errors.New("mismatched operand kinds")
	// ErrUnsupported is returned when an operand kind does not support the operation.
	ErrUnsupported = errors.New("unsupported operand kind")
	// ErrIntOverflow is returned when an integer result does not fit in 64 bits.
	ErrIntOverflow = errors.New("integer overflow")
)

// OpError describes a failed operation on two Values.
type OpError struct {
	Op          string
	Left, Right Kind
	Err         error
}

func (e *OpError) Error() string {
	return "dyn: " + e.Left.String() + " " + e.Op + " " + e.Right.String() + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }

// Add returns a + b. Int operands add exactly and fail on overflow,
// an int mixed with a float is promoted to float, and two strings are
// concatenated. Every other pairing is an error: strings never coerce to
// numbers and bool or null operands do not support addition.
func Add(a, b Value) (Value, error) {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		x, y := int64(a.bits), int64(b.bits)
		sum := x + y
		// Overflow iff both operands share a sign the result does not.
		if (x >= 0) == (y >= 0) && (sum >= 0) != (x >= 0) {
			return Value{}, opErr("+", a, b, ErrIntOverflow)
		}
		return FromInt(sum), nil

	case isNumber(a) && isNumber(b):
		x, _ := a.Number()
		y, _ := b.Number()
		return FromF64(x + y), nil

	case a.kind == KindString && b.kind == KindString:
		return FromString(a.str + b.str), nil

	case !isAddable(a) || !isAddable(b):
		return Value{}, opErr("+", a, b, ErrUnsupported)
	}
	return Value{}, opErr("+", a, b, ErrKindMismatch)
}

// Sub returns a - b under the numeric rules of Add. Strings are unsupported.
func Sub(a, b Value) (Value, error) {
	if !isNumber(a) || !isNumber(b) {
		return Value{}, numericErr("-", a, b)
	}
	if a.kind == KindInt && b.kind == KindInt {
		x, y := int64(a.bits), int64(b.bits)
		diff := x - y
		if (x >= 0) != (y >= 0) && (diff >= 0) != (x >= 0) {
			return Value{}, opErr("-", a, b, ErrIntOverflow)
		}
		return FromInt(diff), nil
	}
	x, _ := a.Number()
	y, _ := b.Number()
	return FromF64(x - y), nil
}

// Mul returns a * b under the numeric rules of Add. Strings are unsupported.
func Mul(a, b Value) (Value, error) {
	if !isNumber(a) || !isNumber(b) {
		return Value{}, numericErr("*", a, b)
	}
	if a.kind == KindInt && b.kind == KindInt {
		x, y := int64(a.bits), int64(b.bits)
		if x == 0 || y == 0 {
			return FromInt(0), nil
		}
		if !mulFits(x, y) {
			return Value{}, opErr("*", a, b, ErrIntOverflow)
		}
		return FromInt(x * y), nil
	}
	x, _ := a.Number()
	y, _ := b.Number()
	return FromF64(x * y), nil
}

func mulFits(x, y int64) bool {
	neg := (x < 0) != (y < 0)
	hi, lo := bits.Mul64(absU64(x), absU64(y))
	if hi != 0 {
		return false
	}
	if neg {
		return lo <= 1<<63
	}
	return lo <= math.MaxInt64
}

func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-x) // MinInt64 maps to 1<<63 through wraparound.
	}
	return uint64(x)
}

func numericErr(op string, a, b Value) error {
	if isAddable(a) && isAddable(b) {
		if a.kind == KindString && b.kind == KindString {
			return opErr(op, a, b, ErrUnsupported)
		}
		return opErr(op, a, b, ErrKindMismatch)
	}
	return opErr(op, a, b, ErrUnsupported)
}

func opErr(op string, a, b Value, err error) error {
	return &OpError{Op: op, Left: a.kind, Right: b.kind, Err: err}
}

func isNumber(v Value) bool { return v.kind == KindInt || v.kind == KindFloat }

func isAddable(v Value) bool { return isNumber(v) || v.kind == KindString }
