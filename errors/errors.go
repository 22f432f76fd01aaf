/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a content record or entity cannot be located
	ErrNotFound = crdb.New("entity not found")

	// ErrAlreadyExists is returned when a store already holds a record for the id
	ErrAlreadyExists = crdb.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = crdb.New("invalid input")

	// ErrConditionFailed is returned when a conditional write is rejected by the backend
	ErrConditionFailed = crdb.New("condition check failed")

	// ErrNoIndexMap is returned when no index map is registered for a geometry type
	ErrNoIndexMap = crdb.New("no index map found for type")

	// ErrUnresolved is returned when a type key has no registered implementation
	ErrUnresolved = crdb.New("type not resolved")

	// ErrUnsupportedType is returned when a store is asked about a geometry type it does not support
	ErrUnsupportedType = crdb.New("unsupported geometry type")
)

// Construction and inspection, re-exported from cockroachdb/errors.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	WithHint = crdb.WithHint
	Is       = crdb.Is
	As       = crdb.As
	GetStack = crdb.GetReportableStackTrace
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// UnresolvedError reports a type key that no registry entry answers to.
type UnresolvedError struct {
	Domain string
	Type   string
}

func (e *UnresolvedError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s type could not be determined", e.Domain)
	}
	return fmt.Sprintf("%s type %q is not registered", e.Domain, e.Type)
}

func (e *UnresolvedError) Is(target error) bool {
	return target == ErrUnresolved
}

// UnsupportedTypeError reports a geometry type outside a store's supports set.
type UnsupportedTypeError struct {
	Store string
	Type  string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("store %q does not support geometry type %q", e.Store, e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(entityType, key string) error {
	return &AlreadyExistsError{Type: entityType, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// NewUnresolvedError creates a new UnresolvedError
func NewUnresolvedError(domain, typ string) error {
	return &UnresolvedError{Domain: domain, Type: typ}
}

// NewUnsupportedTypeError creates a new UnsupportedTypeError
func NewUnsupportedTypeError(store, typ string) error {
	return &UnsupportedTypeError{Store: store, Type: typ}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return Is(err, ErrConditionFailed)
}

// IsUnresolved checks if an error reports an unregistered type
func IsUnresolved(err error) bool {
	return Is(err, ErrUnresolved)
}

// IsUnsupportedType checks if an error reports an unsupported geometry type
func IsUnsupportedType(err error) bool {
	return Is(err, ErrUnsupportedType)
}
