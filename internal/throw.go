package internal

import "github.com/pkg/errors"

// Threading errors up and down Welzl's recursion and the Bowyer-Watson
// insertion loop would add a lot of noise for a condition that well formed
// input never hits. Instead, we panic with a geometryError, and the exported
// entry points recover to convert it back into an error.

var (
	ErrDegenerateTriangle      = errors.New("degenerate triangle")
	ErrInvalidBoundaryTopology = errors.New("boundary edges do not form a single closed loop")
	ErrInvalidSampleCount      = errors.New("sample count must be at least 1")
	ErrNilArm                  = errors.New("arm is nil")
)

// Only geometryError panics are converted. Anything else (index out of range,
// nil dereference) is a real bug and keeps unwinding.
type geometryError struct {
	error
}

func (e geometryError) Unwrap() error {
	return e.error
}

// Panic with a geometryError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(geometryError{errors.Wrapf(cause, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(geometryError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
