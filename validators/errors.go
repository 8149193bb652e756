package veritrans_integration_validators

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ValidationError is the only error kind produced by a failed validation. Anything else
// returned from the validation layer (a type that has no length, a non iterable passthrough
// target) is a programming error and is propagated as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// Construction time errors
var (
	ErrInvalidLengthBounds = eris.New("max length must be greater than or equal to min length")
	ErrInvalidPattern      = eris.New("invalid validation pattern")
)
