package repository

// NotFoundError is an error type for when a resource is not found.
type NotFoundError struct {
	message string
}

// Error returns the error message.
func (e NotFoundError) Error() string {
	return e.message
}

// ErrRecipeNotFound is returned for unknown and malformed recipe IDs alike.
var ErrRecipeNotFound = NotFoundError{message: "Recipe not found"}
