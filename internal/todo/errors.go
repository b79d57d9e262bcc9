package todo

import "errors"

// ErrNotFound is returned when the referenced todo id does not exist.
var ErrNotFound = errors.New("todo not found")

// ValidationError reports malformed client input. The message is safe to
// return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
