package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is matched by every TransitionError.
var ErrInvalidTransition = errors.New("invalid quiz state transition")

// TransitionError reports an operation attempted in a state that does not
// allow it. It signals a sequencing bug in the caller and is not retryable.
type TransitionError struct {
	Op     string
	Status Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s not allowed while session is %s", e.Op, e.Status)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
