package intrinsic

import (
	"errors"
	"strconv"
)

// ErrNilResult is returned when an operation is handed a nil output location.
var ErrNilResult = errors.New("intrinsic: nil result location")

// Failure is an unsuccessful result carrying the process exit status that
// should be reported for it.
type Failure struct {
	Code   int
	Reason error
}

// Fail returns a Failure with the given exit code. A code below 1 is raised to 1.
func Fail(code int, reason error) error {
	if code < 1 {
		code = 1
	}
	return &Failure{Code: code, Reason: reason}
}

func (f *Failure) Error() string {
	if f.Reason == nil {
		return "failure status " + strconv.Itoa(f.Code)
	}
	return f.Reason.Error()
}

func (f *Failure) Unwrap() error { return f.Reason }

// ExitCode maps a result to a process exit status: nil is success (0),
// a Failure reports its own code and any other error reports 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return 1
}
