package smartenum

import (
	"errors"
	"fmt"
)

// NullMarker stands in for the null value in error messages and logs.
const NullMarker = "<null>"

var (
	// ErrNotFound indicates no variant is registered for a value.
	ErrNotFound = errors.New("enum variant not found")

	// ErrSealed indicates a registration after the registry was sealed.
	ErrSealed = errors.New("enum registry sealed")
)

// NotFoundError is returned by Get when no variant has the requested value.
type NotFoundError struct {
	// Type is the concrete enum type name qualified by its import path,
	// e.g. "example.com/app/colors.Color".
	Type string
	// Value is the requested value formatted with %v. Empty when Null is set.
	Value string
	// Null is true when the null variant was requested.
	Null bool
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no variant for value %s", e.Type, displayValue(e.Value, e.Null))
}

// Unwrap returns ErrNotFound for errors.Is support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// RegistrationError describes a rejected registration. Register panics with
// it, since registrations belong to package initialization.
type RegistrationError struct {
	Type  string
	Value string
	Null  bool
	Err   error
}

// Error implements the error interface.
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("%s: register %s: %v", e.Type, displayValue(e.Value, e.Null), e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func displayValue(value string, null bool) string {
	if null {
		return NullMarker
	}
	return value
}
