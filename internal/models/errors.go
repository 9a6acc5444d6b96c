package models

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return e.Message
}
