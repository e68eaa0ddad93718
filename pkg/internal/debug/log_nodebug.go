// ABOUTME: No-op debug logging used when the binary is built without -tags debug
// ABOUTME: The stubs compile away so release builds pay nothing for debug call sites

//go:build !debug
// +build !debug

package debug

import "log"

// Printf does nothing without the debug build tag.
func Printf(component, format string, args ...interface{}) {}

// Println does nothing without the debug build tag.
func Println(component string, args ...interface{}) {}

// SetLogger does nothing without the debug build tag.
func SetLogger(l *log.Logger) {}
