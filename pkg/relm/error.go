package relm

import "fmt"

// ErrorKind classifies startup failures returned by Run.
type ErrorKind int

const (
	// ToolkitInitFailure means the native toolkit could not be initialized.
	ToolkitInitFailure ErrorKind = iota + 1
	// ExecutorIoFailure means an I/O error occurred while building the executor.
	ExecutorIoFailure
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case ToolkitInitFailure:
		return "toolkit init failure"
	case ExecutorIoFailure:
		return "executor io failure"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by Run. Both kinds are fatal and are
// reported before any widget is created.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ToolkitInitFailure:
		if e.Err != nil {
			return fmt.Sprintf("cannot init toolkit: %v", e.Err)
		}
		return "cannot init toolkit"
	case ExecutorIoFailure:
		return fmt.Sprintf("io error: %v", e.Err)
	default:
		return fmt.Sprintf("relm: %v", e.Err)
	}
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so callers can test with
// errors.Is(err, &relm.Error{Kind: relm.ToolkitInitFailure}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Err == nil
}
