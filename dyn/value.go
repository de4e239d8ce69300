// Package dyn implements the dynamic values manipulated by compiled units:
// a tagged Value type, the arithmetic defined over it and the immutable
// Array sequence with its fold operation.
package dyn

import (
	"math"
	"strconv"
)

// Kind is the tag of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a dynamically typed value. The zero Value is null.
// Values are immutable and safe to copy and share.
type Value struct {
	kind Kind
	bits uint64 // payload of bool, int and float kinds.
	str  string
}

func Null() Value { return Value{} }

func FromBool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.bits = 1
	}
	return v
}

func FromInt(i int64) Value { return Value{kind: KindInt, bits: uint64(i)} }

// FromF64 returns a float Value holding f.
func FromF64(f float64) Value { return Value{kind: KindFloat, bits: math.Float64bits(f)} }

func FromString(s string) Value { return Value{kind: KindString, str: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() (b, ok bool) {
	return v.bits != 0, v.kind == KindBool
}

func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return int64(v.bits), true
}

func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return math.Float64frombits(v.bits), true
}

func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Number returns the numeric payload of an int or float Value as a float64.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(int64(v.bits)), true
	case KindFloat:
		return math.Float64frombits(v.bits), true
	}
	return 0, false
}

// Equal reports whether v and w have the same kind and payload.
// A float NaN is never equal to anything.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindFloat:
		return math.Float64frombits(v.bits) == math.Float64frombits(w.bits)
	case KindString:
		return v.str == w.str
	}
	return v.bits == w.bits
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.bits != 0)
	case KindInt:
		return strconv.FormatInt(int64(v.bits), 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case KindString:
		return v.str
	}
	return "null"
}

// GoString renders v unambiguously, quoting strings and tagging kinds.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "dyn.Null()"
	case KindString:
		return "dyn.FromString(" + strconv.Quote(v.str) + ")"
	}
	return v.kind.String() + "(" + v.String() + ")"
}
