package errors

// ABOUTME: Structured error type carrying a stable code, message and context map
// ABOUTME: Implements the binder/accessor error taxonomy with JSON serialization

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error codes used across the library. Anything carrying one of these codes
// originates from caller-supplied data or from environment state; structural
// misuse of the API panics instead.
const (
	// CodeMissingArgument marks a required constructor parameter that has no
	// usable binding: the key is absent with no default, or the raw text
	// could not be deserialized.
	CodeMissingArgument = "missing_argument"

	// CodeInvalidProperty marks a property read for a name that does not
	// exist on the queried type.
	CodeInvalidProperty = "invalid_property"

	// CodeTypeNotFound marks a fully-qualified name that a search context
	// could not resolve to a registered type.
	CodeTypeNotFound = "type_not_found"
)

// Error is the structured error used throughout kara. It carries a stable
// code for programmatic dispatch, a human-readable message, and a context
// map with the values that produced the failure (parameter name, raw text,
// type name). It serializes to JSON for embedding in API responses.
type Error struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	CauseText string         `json:"cause,omitempty"`
	Timestamp time.Time      `json:"timestamp"`

	cause error
}

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Context:   make(map[string]any),
		Timestamp: time.Now(),
	}
}

// Wrap wraps an existing error with a code and message, preserving the
// original as the unwrap target. Returns nil if err is nil.
func Wrap(err error, code, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.cause = err
	e.CauseText = err.Error()
	return e
}

// With adds a key-value pair to the error context and returns the error
// for chaining.
func (e *Error) With(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.cause.Error())
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// ToJSON serializes the error to indented JSON.
func (e *Error) ToJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// NewMissingArgument reports a required parameter that is absent from the
// parameter map. The available params are included so callers can see what
// was actually supplied.
func NewMissingArgument(name string, params map[string]string) *Error {
	e := New(CodeMissingArgument,
		fmt.Sprintf("required argument '%s' is missing, available params: %v", name, params))
	return e.With("argument", name)
}

// NewBadArgument reports a parameter whose raw text was present but could
// not be deserialized into the declared type. A present-but-undeserializable
// value is treated the same as a missing one, not as a silent null.
func NewBadArgument(name, raw string) *Error {
	e := New(CodeMissingArgument, fmt.Sprintf("bad argument %s='%s'", name, raw))
	return e.With("argument", name).With("raw", raw)
}

// NewInvalidProperty reports a property read against a name the queried
// type does not declare.
func NewInvalidProperty(typeName, property string) *Error {
	e := New(CodeInvalidProperty,
		fmt.Sprintf("type %s has no property '%s'", typeName, property))
	return e.With("type", typeName).With("property", property)
}

// NewTypeNotFound reports a fully-qualified name that could not be resolved
// through a search context.
func NewTypeNotFound(fqn string) *Error {
	e := New(CodeTypeNotFound, fmt.Sprintf("type %s is not registered", fqn))
	return e.With("type", fqn)
}

// hasCode reports whether err is or wraps an *Error with the given code.
func hasCode(err error, code string) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// IsMissingArgument reports whether err represents a missing or
// undeserializable constructor argument.
func IsMissingArgument(err error) bool { return hasCode(err, CodeMissingArgument) }

// IsInvalidProperty reports whether err represents a read of a nonexistent
// property.
func IsInvalidProperty(err error) bool { return hasCode(err, CodeInvalidProperty) }

// IsTypeNotFound reports whether err represents an unresolvable type name.
func IsTypeNotFound(err error) bool { return hasCode(err, CodeTypeNotFound) }
