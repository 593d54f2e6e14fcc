package promise

import (
	"fmt"

	"github.com/pkg/errors"
)

// PanicError is the rejection reason used when a continuation, rejection
// handler, or Finally callback panics with a value that is not itself an
// error. The recovered value is preserved and a stack trace is attached at
// the capture site.
type PanicError struct {
	value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("promise: callback panicked: %v", e.value)
}

// Value returns the recovered panic value.
func (e *PanicError) Value() any {
	return e.value
}

// capturedPanic converts a recovered panic value into a rejection reason.
// A panic carrying an error keeps its identity, so a handler downstream
// observes the very value that was thrown; anything else is wrapped in a
// stack-annotated PanicError.
func capturedPanic(value any) error {
	if err, ok := value.(error); ok {
		return err
	}

	return errors.WithStack(&PanicError{value: value})
}
