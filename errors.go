package tslogger

import (
	"errors"
	"fmt"
)

var (
	// ErrLoggerClosed is returned (in implementations that choose to fail
	// fast rather than drop silently) when submit is called after CloseIt.
	ErrLoggerClosed = errors.New("tslogger: logger is closed")
	// ErrAmbiguousSchedule is the fatal error raised by pick-and-proceed
	// when two concurrently waiting Standard messages share a body: the
	// instrumentation is ambiguous and cannot be reproducibly scheduled.
	ErrAmbiguousSchedule = errors.New("tslogger: two check-ins have equal message bodies, schedule is ambiguous")
	// ErrWaitDynamicUnimplemented is the fatal error raised by submit when
	// the Logger was constructed with WaitDynamicMode.
	ErrWaitDynamicUnimplemented = errors.New("tslogger: WaitDynamic is reserved and unimplemented")
	// ErrBadDebugEnv is the fatal error raised at first use when the DEBUG
	// environment variable is set but not parseable as an integer.
	ErrBadDebugEnv = errors.New("tslogger: DEBUG environment variable is not a valid integer")
)

// CoordinatorError wraps a fatal cause together with the operation that
// raised it: pickAndProceed panics with one wrapping ErrAmbiguousSchedule,
// and submit panics with one wrapping ErrWaitDynamicUnimplemented. A panic
// inside the coordinator goroutine is reported to stderr and re-raised.
type CoordinatorError struct {
	Op  string
	Err error
}

func (e *CoordinatorError) Error() string {
	return fmt.Sprintf("tslogger.%s: %v", e.Op, e.Err)
}

func (e *CoordinatorError) Unwrap() error {
	return e.Err
}

func newCoordinatorError(op string, err error) *CoordinatorError {
	return &CoordinatorError{Op: op, Err: err}
}
