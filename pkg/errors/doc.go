// ABOUTME: Structured error taxonomy for parameter binding and property access.
// ABOUTME: Code-tagged serializable errors distinguishing user input from environment faults.
// Package errors provides the structured error types used across kara.
// Errors carry a stable code, a context map with the offending values, and
// serialize to JSON for embedding in API responses.
//
// The taxonomy distinguishes errors caused by caller-supplied data
// (missing_argument, invalid_property), which embedding systems should map
// to a 4xx-equivalent outcome, from environment inconsistencies
// (type_not_found), which the scanner swallows per entry. Structural misuse
// of the API is a panic, never an *Error. There are no retries anywhere:
// recovery, if desired, belongs to the embedding application.
package errors
