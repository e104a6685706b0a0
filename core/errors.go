package core

import "errors"

var (
	// ErrReadOnly is returned when appending through a read only transaction.
	ErrReadOnly = errors.New("transaction is read only")
	// ErrEmailTaken is returned when creating a user with an email that is already in use.
	ErrEmailTaken = &ConflictError{Message: "Email taken."}
	// ErrUserNotExist is returned when creating a post for an unknown author.
	ErrUserNotExist = &ValidationError{Message: "User not exist"}
	// ErrUserOrPostNotExist is returned when creating a comment for an unknown author
	// or for a post that does not exist or is not published.
	ErrUserOrPostNotExist = &ValidationError{Message: "User or post does not exist"}
)

// ConflictError is returned when a write would violate a uniqueness constraint.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError is returned when a write references records that do not exist.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsConflict returns true if err is or wraps a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
