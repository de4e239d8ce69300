package intrinsic

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type integer interface {
	signed | unsigned
}

type float interface {
	~float32 | ~float64
}

type numeric interface {
	integer | float
}

// Sum returns the sum of all elements of arr visited from Lower to Upper.
// Integer sums wrap on overflow, matching native arithmetic.
func Sum[T numeric](arr Array[T]) T {
	var acc T
	for i := arr.Lower(); i <= arr.Upper(); i++ {
		curr := arr.At(i)
		acc = acc + curr
	}
	return acc
}
