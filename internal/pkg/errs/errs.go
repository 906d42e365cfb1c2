package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Concrete error types
// unwrap to one of these so callers can classify errors with errors.Is
// without depending on the concrete type.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrContention             = errors.New("resource is contended")
	ErrSchedulingConflict     = errors.New("scheduling conflict")
	ErrStateTransitionInvalid = errors.New("state transition is invalid")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError is returned when an object cannot be located by its
// identifier. ParamName names the lookup parameter, ID carries the value
// that produced no result.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause (for example a database error).
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the validation failure that triggered it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside its allowed
// bounds. Value, Min and Max are kept untyped so callers can report ints,
// decimals or dates alike.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError is returned when an optimistic concurrency check
// fails: the aggregate was modified by another caller between read and
// write. The loser must re-read and retry, never overwrite.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError wrapping the
// underlying cause.
func NewVersionIsInvalidError(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError without
// a cause.
func NewVersionIsInvalidErrorWithCause(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ContentionError is returned when a lock required to serialize an
// operation could not be acquired within its bounded wait. The operation
// left no partial state behind; the caller should retry with backoff.
type ContentionError struct {
	Resource string
	Cause    error
}

// NewContentionError creates a ContentionError for the named resource.
func NewContentionError(resource string, cause error) *ContentionError {
	return &ContentionError{Resource: resource, Cause: cause}
}

func (e *ContentionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrContention, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrContention, e.Resource)
}

func (e *ContentionError) Unwrap() error {
	return ErrContention
}

// SchedulingConflictDetail identifies one over-committed (date, work-line)
// pair and the orders already holding its capacity. Identifiers are carried
// as strings so this package stays free of domain imports.
type SchedulingConflictDetail struct {
	Date     string
	WorkLine string
	Orders   []string
}

func (d SchedulingConflictDetail) String() string {
	return fmt.Sprintf("%s on line %s (orders: %s)", d.Date, d.WorkLine, strings.Join(d.Orders, ", "))
}

// SchedulingConflictError is returned when a planning save would exceed
// work-line capacity on one or more dates. Details list every conflicting
// (date, work-line) pair so the caller can show the exact collision.
type SchedulingConflictError struct {
	Details []SchedulingConflictDetail
}

// NewSchedulingConflictError creates a SchedulingConflictError from the
// detected collisions. Details must not be empty.
func NewSchedulingConflictError(details []SchedulingConflictDetail) *SchedulingConflictError {
	return &SchedulingConflictError{Details: details}
}

func (e *SchedulingConflictError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.String())
	}
	return fmt.Sprintf("%s: %s", ErrSchedulingConflict, strings.Join(parts, "; "))
}

func (e *SchedulingConflictError) Unwrap() error {
	return ErrSchedulingConflict
}

// StateTransitionInvalidError is returned when an order status change does
// not follow the lifecycle graph. From and To carry the state names.
type StateTransitionInvalidError struct {
	From  string
	To    string
	Cause error
}

// NewStateTransitionInvalidError creates a StateTransitionInvalidError for
// the rejected edge.
func NewStateTransitionInvalidError(from, to string) *StateTransitionInvalidError {
	return &StateTransitionInvalidError{From: from, To: to}
}

// NewStateTransitionInvalidErrorWithCause creates a
// StateTransitionInvalidError wrapping the precondition that failed.
func NewStateTransitionInvalidErrorWithCause(from, to string, cause error) *StateTransitionInvalidError {
	return &StateTransitionInvalidError{From: from, To: to, Cause: cause}
}

func (e *StateTransitionInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrStateTransitionInvalid, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrStateTransitionInvalid, e.From, e.To)
}

func (e *StateTransitionInvalidError) Unwrap() error {
	return ErrStateTransitionInvalid
}
