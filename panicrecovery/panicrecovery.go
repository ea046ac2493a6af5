package panicrecovery

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrPanic marks errors produced by RecoverToError.
var ErrPanic = errors.New("recovered from panic")

// stderr is swapped in tests.
var stderr io.Writer = os.Stderr

// Always defer this function at the very beginning of each new go-routine.
// Defer it directly, it cannot be called from another deferred function, because
// recover() below will stop working.
func RecoverAndLog() {
	if r := recover(); r != nil {
		log(r, debug.Stack())
	}
}

// Similar to the above, but also can execute a function to do special cleanup when there is a panic.
func RecoverAndLogWithCleanup(cleanup func()) {
	if r := recover(); r != nil {
		log(r, debug.Stack())
		cleanup()
	}
}

// RecoverToError turns a panic into an error stored in *errp, which wraps ErrPanic and, when
// the panic value was an error, that error too. Like RecoverAndLog it must be deferred directly.
//
//	func parse(b []byte) (err error) {
//		defer panicrecovery.RecoverToError(&err)
//		...
//	}
func RecoverToError(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	stack := debug.Stack()
	log(r, stack)

	if cause, ok := r.(error); ok {
		*errp = errors.Wrapf(errors.Mark(cause, ErrPanic), "recovered from panic")
		return
	}
	*errp = errors.Wrapf(ErrPanic, "%v", r)
}

// Go runs fn in a new goroutine guarded by RecoverAndLog.
func Go(fn func()) {
	go func() {
		defer RecoverAndLog()
		fn()
	}()
}

func log(r any, stack []byte) {
	fmt.Fprintf(stderr, "panic: %v\n%s", r, stack)
	zap.L().Error("Recovered from panic.", zap.ByteString("stackTrace", stack), zap.Any("panic", r))
}
