// ABOUTME: Internal debugging utilities for development and troubleshooting.
// ABOUTME: Conditional debug logging with component-based filtering.
// Package debug provides internal debugging utilities that are conditionally
// compiled based on build tags. It offers component-based debug logging,
// enabled per component through the KARA_DEBUG environment variable, for
// the scanner and the metadata caches.
//
// This is an internal package and should not be imported by external code.
// Debug logging is compiled out of production builds.
package debug
