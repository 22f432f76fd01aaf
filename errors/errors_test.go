/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("geo", "7")

	expected := `geo with key "7" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !stderrors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound with the standard library")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("coordinates", "7")

	expected := `coordinates with key "7" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "lat",
			message:  "required",
			expected: `validation failed for field "lat": required`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("save", "attribute_not_exists(PK)")

	expected := "condition check failed for save operation: attribute_not_exists(PK)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestUnresolvedError(t *testing.T) {
	err := NewUnresolvedError("geometry", "polygon")
	if err.Error() != `geometry type "polygon" is not registered` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsUnresolved(err) {
		t.Error("IsUnresolved should return true for UnresolvedError")
	}

	empty := NewUnresolvedError("map", "")
	if empty.Error() != "map type could not be determined" {
		t.Errorf("unexpected message %q", empty.Error())
	}
}

func TestUnsupportedTypeError(t *testing.T) {
	err := NewUnsupportedTypeError("local", "polygon")
	if err.Error() != `store "local" does not support geometry type "polygon"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !IsUnsupportedType(err) {
		t.Error("IsUnsupportedType should return true for UnsupportedTypeError")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewNotFoundError("geo", "7")

	wrapped := fmt.Errorf("content lookup failed: %w", original)
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with fmt wrapped errors")
	}

	wrapped = Wrap(original, "resolve geometry")
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should work with Wrap")
	}
	if GetStack(wrapped) == nil {
		t.Error("Wrap should attach a stack trace")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrNoIndexMap,
		ErrUnresolved,
		ErrUnsupportedType,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
