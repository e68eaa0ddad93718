// ABOUTME: Namespace scanner over directory trees and zip archives with per-context caching.
// ABOUTME: Search contexts, capability filtering and scan configuration.
// Package scan discovers registered type definitions under a dotted
// namespace prefix across an ordered list of search roots. A root is
// either a directory tree or a zip archive addressed with a "jar:"
// locator; both are traversed for compiled-type marker files whose path
// falls under the prefix, excluding synthetic/anonymous names. Derived
// fully-qualified names are loaded through the search context's registry;
// an individual name that fails to resolve is logged and skipped, while a
// failure opening a root fails the scan.
//
// Results are cached per (context identity, prefix) for the process
// lifetime. Identity is assigned at context construction: two contexts
// with identical roots still cache independently. Search roots are
// assumed immutable after startup, so entries are never invalidated.
package scan
