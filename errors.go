package subtrack

import "errors"

// Errors returned by the registry and the subscription constructor.
// Callers match them with errors.Is; returned errors may carry extra
// context via wrapping.
var (
	// ErrNotFound means no subscription with the given name exists.
	ErrNotFound = errors.New("subscription not found")

	// ErrDuplicateName means a subscription with the same name is already registered.
	ErrDuplicateName = errors.New("subscription already exists")

	// ErrInvalidInput means a name, cost or date failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
