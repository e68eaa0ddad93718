// ABOUTME: String-to-typed-value deserialization behind a pluggable converter registry.
// ABOUTME: Default implementation of the Deserialize collaborator the bean builder consumes.
// Package convert deserializes raw parameter text into typed values. The
// bean builder only depends on the Deserializer interface; this package
// ships a default implementation backed by a priority-ordered registry of
// converters for strings, numbers, booleans, durations, timestamps, and a
// JSON fallback for composite types.
//
// A nil return from Deserialize means "could not deserialize" and is
// treated by the bean builder as parameter absence. Deserialized values
// are never cached; only converter dispatch is table-driven.
package convert
