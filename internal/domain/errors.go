package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail indicates that a registration used an email that is
	// already taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials indicates a failed login. It deliberately does not
	// distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMethodInUse indicates that a method cannot be deleted because
	// measurement rows still reference it.
	ErrMethodInUse = errors.New("method is referenced by existing measurements")
	// ErrUnknownKind indicates a measurement kind outside the closed set.
	ErrUnknownKind = errors.New("unknown measurement kind")
)

// StorageError wraps an unclassified storage failure with the operation that
// produced it. Callers should not surface the wrapped driver error text to
// end users.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
