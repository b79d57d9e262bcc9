package todo

import "strings"

// NormalizeText validates a client-supplied text value and returns the
// trimmed string to store. The value comes from a decoded JSON body, so it
// may be any type; only a string with non-whitespace content is accepted.
func NormalizeText(value any) (string, error) {
	text, ok := value.(string)
	if !ok {
		return "", &ValidationError{Message: "todo text cannot be empty"}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &ValidationError{Message: "todo text cannot be empty"}
	}

	return trimmed, nil
}

// ParseCompleted validates a client-supplied completed value. Only a JSON
// boolean is accepted; truthy values of other types are rejected.
func ParseCompleted(value any) (bool, error) {
	completed, ok := value.(bool)
	if !ok {
		return false, &ValidationError{Message: "completed must be a boolean value"}
	}
	return completed, nil
}
