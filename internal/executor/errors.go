package executor

import "errors"

// Backend resolution and availability errors.
var (
	// ErrUnknownExecutor is returned by Resolve for a backend name that
	// does not match any known backend.
	ErrUnknownExecutor = errors.New("unknown parser")

	// ErrUnsupported is returned by a backend whose implementation is
	// not compiled into this binary. The backend still resolves and
	// dispatches normally; only its Parse calls fail.
	ErrUnsupported = errors.New("parser is not supported in this build")
)
