// Package lily holds the compiled demo unit: a hello world routine and the
// two renditions of an array summation, one over dynamic values and one
// over a primitive integer array.
package lily

import (
	"fmt"

	"github.com/soypat/lily/dyn"
	"github.com/soypat/lily/intrinsic"
	"go.uber.org/zap"
)

// Runtime is the environment compiled routines run against.
type Runtime struct {
	console *intrinsic.Console
	log     *zap.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for runtime diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(rt *Runtime) {
		if log != nil {
			rt.log = log
		}
	}
}

// NewRuntime returns a Runtime writing program output to console.
// A nil console writes to standard output.
func NewRuntime(console *intrinsic.Console, opts ...Option) *Runtime {
	if console == nil {
		console = intrinsic.Stdout()
	}
	rt := &Runtime{console: console, log: zap.NewNop()}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// HelloWorld writes "Hello world!" to the console.
func (rt *Runtime) HelloWorld() error {
	if err := rt.console.Log("Hello world!"); err != nil {
		rt.log.Warn("hello world failed", zap.Error(err))
		return err
	}
	return nil
}

// SumOfArray returns the sum of the elements of arr. Elements are added left
// to right onto a float zero so the result of an empty or all-integer array
// is still a float.
func (rt *Runtime) SumOfArray(arr dyn.Array) (dyn.Value, error) {
	sum, err := arr.ReduceCopy(sumOfArrayStep, dyn.FromF64(0))
	if err != nil {
		rt.log.Warn("sum of array failed", zap.Int("len", arr.Len()), zap.Error(err))
		return dyn.Value{}, fmt.Errorf("sum of array: %w", err)
	}
	rt.log.Debug("sum of array",
		zap.Int("len", arr.Len()),
		zap.Stringer("kind", sum.Kind()),
		zap.Stringer("result", sum))
	return sum, nil
}

func sumOfArrayStep(_ dyn.Array, acc, cur dyn.Value, _ int) (dyn.Value, error) {
	return dyn.Add(acc, cur)
}

// SumOfIntArray stores the sum of the elements of arr in result.
// Integer overflow wraps.
func (rt *Runtime) SumOfIntArray(arr intrinsic.Array[int64], result *int64) error {
	if result == nil {
		return fmt.Errorf("sum of int array: %w", intrinsic.ErrNilResult)
	}
	*result = intrinsic.Sum(arr)
	rt.log.Debug("sum of int array", zap.Int("len", arr.Len()), zap.Int64("result", *result))
	return nil
}

// Demo runs every routine of the unit on fixed inputs and writes the
// results to the console.
func (rt *Runtime) Demo() error {
	if err := rt.HelloWorld(); err != nil {
		return err
	}
	sum, err := rt.SumOfArray(dyn.Floats(1, 2, 3))
	if err != nil {
		return err
	}
	if err := rt.console.Print("sumOfArray", dyn.Floats(1, 2, 3), "=", sum); err != nil {
		return err
	}
	var isum int64
	ints := intrinsic.NewArray([]int64{1, 2, 3, 4})
	if err := rt.SumOfIntArray(ints, &isum); err != nil {
		return err
	}
	return rt.console.Print("sumOfIntArray", ints.Values(), "=", isum)
}
