/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("component type", "modulef:Sprite")

	expected := `component type with key "modulef:Sprite" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("module", "core")

	expected := `module with key "core" already exists`
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
			field:    "factory",
			message:  `unknown factory "fast"`,
			expected: `validation failed for field "factory": unknown factory "fast"`,
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
	err := NewConditionFailedError("put", "attribute_not_exists(PK)")

	expected := "condition check failed for put operation: attribute_not_exists(PK)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestPropertyResolutionError(t *testing.T) {
	err := NewPropertyResolutionError("Broken", "count", reflect.TypeFor[int](), reflect.TypeFor[string]())

	msg := err.Error()
	for _, want := range []string{"Broken", `"count"`, "int", "string"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in error message %q", want, msg)
		}
	}

	if !IsPropertyResolution(err) {
		t.Error("IsPropertyResolution should return true for PropertyResolutionError")
	}

	var pre *PropertyResolutionError
	if !errors.As(err, &pre) || pre.Property != "count" {
		t.Errorf("errors.As should expose the property name, got %+v", pre)
	}
}

func TestInstantiationError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInstantiationError("Basic", cause)

	if !IsInstantiation(err) {
		t.Error("IsInstantiation should return true for InstantiationError")
	}
	if !errors.Is(err, cause) {
		t.Error("InstantiationError should unwrap to its cause")
	}
	if got := NewInstantiationError("Basic", nil).Error(); got != "component Basic: instantiation failed" {
		t.Errorf("Unexpected message without cause: %q", got)
	}
}

func TestPropertyValueError(t *testing.T) {
	err := NewPropertyValueError("Basic", "name", reflect.TypeFor[string](), nil)

	expected := `component Basic: property "name" expects string, got nil`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !IsValidationError(err) {
		t.Error("PropertyValueError should match ErrInvalidInput")
	}
}

func TestModuleErrors(t *testing.T) {
	err := NewModuleError("modulef", `missing dependency "core"`)
	if !IsInvalidModule(err) {
		t.Error("IsInvalidModule should return true for ModuleError")
	}

	pathErr := NewInvalidModulePathError("/nope", errors.New("not a directory"))
	if !IsInvalidModule(pathErr) {
		t.Error("IsInvalidModule should return true for InvalidModulePathError")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewUnknownPropertyError("Basic", "colour")
	wrapped := fmt.Errorf("restore failed: %w", original)

	if !IsUnknownProperty(wrapped) {
		t.Error("IsUnknownProperty should work with wrapped errors")
	}

	notComponent := fmt.Errorf("build: %w", NewNotComponentError("int", "no Copy method"))
	if !IsNotComponent(notComponent) {
		t.Error("IsNotComponent should work with wrapped errors")
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
		ErrNoIndexMap,
		ErrPropertyResolution,
		ErrComponentInstantiation,
		ErrUnknownProperty,
		ErrNotComponent,
		ErrInvalidModule,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
