package users

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

type invalidInputError struct {
	msg string
}

func (e *invalidInputError) Error() string { return e.msg }

func (e *invalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// InvalidInput returns a validation error carrying a caller-facing message.
// errors.Is(err, ErrInvalidInput) matches it.
func InvalidInput(msg string) error {
	return &invalidInputError{msg: msg}
}
