package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrNotConfigured     = errors.New("not configured")
	ErrUpstreamFailure   = errors.New("upstream failure")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value is invalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is out of range: %s is %s, min value is %v, max value is %v",
		sanitize(fmt.Sprintf("%v", e.Value)), sanitize(e.ParamName), e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// NotConfiguredError indicates that a required operational parameter is
// absent from the service configuration.
type NotConfiguredError struct {
	ParamName string
	Cause     error
}

// NewNotConfiguredError creates a NotConfiguredError for the named parameter.
func NewNotConfiguredError(paramName string) *NotConfiguredError {
	return &NotConfiguredError{ParamName: paramName}
}

// NewNotConfiguredErrorWithCause creates a NotConfiguredError wrapping a cause.
func NewNotConfiguredErrorWithCause(paramName string, cause error) *NotConfiguredError {
	return &NotConfiguredError{ParamName: paramName, Cause: cause}
}

func (e *NotConfiguredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s is not configured (cause: %s)", sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s is not configured", sanitize(e.ParamName))
}

func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

// UpstreamError indicates that a remote collaborator call failed.
type UpstreamError struct {
	Service string
	Cause   error
}

// NewUpstreamError creates an UpstreamError for the named remote service.
func NewUpstreamError(service string) *UpstreamError {
	return &UpstreamError{Service: service}
}

// NewUpstreamErrorWithCause creates an UpstreamError wrapping a cause.
func NewUpstreamErrorWithCause(service string, cause error) *UpstreamError {
	return &UpstreamError{Service: service, Cause: cause}
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream failure: %s (cause: %s)", sanitize(e.Service), e.Cause)
	}
	return fmt.Sprintf("upstream failure: %s", sanitize(e.Service))
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamFailure
}
