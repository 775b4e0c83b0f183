package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrIncompleteIdentity marks a token that verified fine but is missing
	// the sub or id claim. Callers must treat it as an authentication
	// failure, not as a missing resource.
	ErrIncompleteIdentity = errors.New("incomplete identity")
)

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func NewNotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsIncompleteIdentity(err error) bool {
	return errors.Is(err, ErrIncompleteIdentity)
}

// IsAuthFailure reports whether err is any authentication failure. All of
// these map to HTTP 401; none of them may leak which step rejected the
// request.
func IsAuthFailure(err error) bool {
	return IsInvalidCredentials(err) || IsInvalidToken(err) || IsIncompleteIdentity(err)
}
