// ABOUTME: Type system registry realizing the host-runtime introspection boundary.
// ABOUTME: Descriptors, constructor parameter metadata, and a thread-safe name registry.
// Package typesys holds the type definitions kara discovers and constructs.
// Go has no classpath-style class loading, so loadable types are declared
// explicitly at startup: each type is registered under a fully-qualified
// dotted name together with its designated constructor function and
// per-parameter metadata (nullability, defaults, receiver role). The
// resulting Descriptor is the opaque handle the scanner returns and the
// bean builder consumes.
//
// Parameter shape is resolved exactly once, at registration time. The
// builder API panics on structural misuse (a non-function constructor, a
// parameter count mismatch, an inconvertible default); those are programmer
// errors, not user input.
package typesys
