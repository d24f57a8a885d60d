package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrNotFound is returned when an identifier referenced by a read or write
// does not resolve to a stored record.
type ErrNotFound struct {
	Entity string
	ID     string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ErrInvalidReference marks a malformed identifier.
type ErrInvalidReference struct {
	Field string
	Value string
}

func (e *ErrInvalidReference) Error() string {
	return fmt.Sprintf("%s: invalid identifier %q", e.Field, e.Value)
}

func NewValidation(field, message string) error {
	return &ErrValidation{Field: field, Message: message}
}

func NewNotFound(entity, id string) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

func NewInvalidReference(field, value string) error {
	return &ErrInvalidReference{Field: field, Value: value}
}

func IsValidation(err error) bool {
	var target *ErrValidation
	return stderrors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *ErrNotFound
	return stderrors.As(err, &target)
}

func IsInvalidReference(err error) bool {
	var target *ErrInvalidReference
	return stderrors.As(err, &target)
}
