// ABOUTME: Reflective construction of instances from flat string parameter maps.
// ABOUTME: Constructor parameter resolution, singleton short-circuiting, accessor cache.
// Package bean builds instances of registered types from flat string-keyed
// parameter maps, the shape HTTP form posts, query strings and CLI args
// arrive in. Each constructor parameter resolves to a singleton receiver,
// an explicit null, a deserialized value, or the registered default; a
// required parameter with no usable binding surfaces as a missing-argument
// error carrying the parameter name.
//
// Flat string maps cannot natively represent null or "omitted", so "",
// "null" and key absence are three independently meaningful signals that
// map onto exactly two target states: explicit null versus the declared
// default.
//
// The package also maintains a process-wide property accessor cache used
// for reflective post-construction reads; lookups, including confirmed
// misses, are O(1) on repeat.
package bean
