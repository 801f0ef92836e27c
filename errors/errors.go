/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"reflect"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record or registered type is not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when attempting to create something that already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional update fails
	ErrConditionFailed = errors.New("condition check failed")

	// ErrNoIndexMap is returned when no index map is found for a type
	ErrNoIndexMap = errors.New("no index map found for type")

	// ErrPropertyResolution is returned when a getter/setter pair has no common type
	ErrPropertyResolution = errors.New("property resolution failed")

	// ErrComponentInstantiation is returned when a component instance cannot be created or copied
	ErrComponentInstantiation = errors.New("component instantiation failed")

	// ErrUnknownProperty is returned when a property lookup by name finds nothing
	ErrUnknownProperty = errors.New("unknown property")

	// ErrNotComponent is returned when a type does not satisfy the component contract
	ErrNotComponent = errors.New("type is not a component")

	// ErrInvalidModule is returned for malformed modules, manifests and module paths
	ErrInvalidModule = errors.New("invalid module")
)

// NotFoundError represents an error when a record or type is not found
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

// AlreadyExistsError represents an error when a record or type already exists
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

// PropertyResolutionError reports a getter/setter pair whose types are not
// assignable to each other in either direction.
type PropertyResolutionError struct {
	Component  string
	Property   string
	GetterType reflect.Type
	SetterType reflect.Type
}

func (e *PropertyResolutionError) Error() string {
	return fmt.Sprintf("component %s: property %q has incompatible accessors: getter returns %s, setter accepts %s",
		e.Component, e.Property, e.GetterType, e.SetterType)
}

func (e *PropertyResolutionError) Is(target error) bool {
	return target == ErrPropertyResolution
}

// InstantiationError wraps a failure to construct or copy a component instance.
type InstantiationError struct {
	Component string
	Cause     error
}

func (e *InstantiationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("component %s: instantiation failed", e.Component)
	}
	return fmt.Sprintf("component %s: instantiation failed: %v", e.Component, e.Cause)
}

func (e *InstantiationError) Is(target error) bool {
	return target == ErrComponentInstantiation
}

func (e *InstantiationError) Unwrap() error {
	return e.Cause
}

// UnknownPropertyError is used where a missing property has to be reported as
// an error rather than an absent result.
type UnknownPropertyError struct {
	Component string
	Property  string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("component %s has no property %q", e.Component, e.Property)
}

func (e *UnknownPropertyError) Is(target error) bool {
	return target == ErrUnknownProperty
}

// NotComponentError reports a type that cannot be managed as a component.
type NotComponentError struct {
	Type   string
	Reason string
}

func (e *NotComponentError) Error() string {
	return fmt.Sprintf("type %s is not a component: %s", e.Type, e.Reason)
}

func (e *NotComponentError) Is(target error) bool {
	return target == ErrNotComponent
}

// PropertyValueError reports a Set call with an instance or value of the wrong type.
type PropertyValueError struct {
	Component string
	Property  string
	Expected  reflect.Type
	Actual    reflect.Type
}

func (e *PropertyValueError) Error() string {
	actual := "nil"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("component %s: property %q expects %s, got %s", e.Component, e.Property, e.Expected, actual)
}

func (e *PropertyValueError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ModuleError reports an inconsistent module or module environment.
type ModuleError struct {
	Module string
	Reason string
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("module %q: %s", e.Module, e.Reason)
}

func (e *ModuleError) Is(target error) bool {
	return target == ErrInvalidModule
}

// InvalidModulePathError reports a module root that cannot be used as a file source.
type InvalidModulePathError struct {
	Path  string
	Cause error
}

func (e *InvalidModulePathError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid module path %q", e.Path)
	}
	return fmt.Sprintf("invalid module path %q: %v", e.Path, e.Cause)
}

func (e *InvalidModulePathError) Is(target error) bool {
	return target == ErrInvalidModule
}

func (e *InvalidModulePathError) Unwrap() error {
	return e.Cause
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

// NewPropertyResolutionError creates a new PropertyResolutionError
func NewPropertyResolutionError(component, property string, getter, setter reflect.Type) error {
	return &PropertyResolutionError{Component: component, Property: property, GetterType: getter, SetterType: setter}
}

// NewInstantiationError creates a new InstantiationError
func NewInstantiationError(component string, cause error) error {
	return &InstantiationError{Component: component, Cause: cause}
}

// NewUnknownPropertyError creates a new UnknownPropertyError
func NewUnknownPropertyError(component, property string) error {
	return &UnknownPropertyError{Component: component, Property: property}
}

// NewNotComponentError creates a new NotComponentError
func NewNotComponentError(typeName, reason string) error {
	return &NotComponentError{Type: typeName, Reason: reason}
}

// NewPropertyValueError creates a new PropertyValueError
func NewPropertyValueError(component, property string, expected, actual reflect.Type) error {
	return &PropertyValueError{Component: component, Property: property, Expected: expected, Actual: actual}
}

// NewModuleError creates a new ModuleError
func NewModuleError(module, reason string) error {
	return &ModuleError{Module: module, Reason: reason}
}

// NewInvalidModulePathError creates a new InvalidModulePathError
func NewInvalidModulePathError(path string, cause error) error {
	return &InvalidModulePathError{Path: path, Cause: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsPropertyResolution checks if an error is a property resolution error
func IsPropertyResolution(err error) bool {
	return errors.Is(err, ErrPropertyResolution)
}

// IsInstantiation checks if an error is a component instantiation error
func IsInstantiation(err error) bool {
	return errors.Is(err, ErrComponentInstantiation)
}

// IsUnknownProperty checks if an error is an unknown property error
func IsUnknownProperty(err error) bool {
	return errors.Is(err, ErrUnknownProperty)
}

// IsNotComponent checks if an error reports a type outside the component contract
func IsNotComponent(err error) bool {
	return errors.Is(err, ErrNotComponent)
}

// IsInvalidModule checks if an error is a module error
func IsInvalidModule(err error) bool {
	return errors.Is(err, ErrInvalidModule)
}
