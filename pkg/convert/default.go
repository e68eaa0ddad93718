package convert

// ABOUTME: Shared default converter registry with all built-in converters pre-registered
// ABOUTME: Lazily initialized once, used by the bean builder unless overridden

import "sync"

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

// Default returns the shared registry with all built-in converters
// registered. It is initialized on first use and safe for concurrent use.
func Default() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, c := range []Converter{
			&StringConverter{},
			&TimeConverter{},
			&IntConverter{},
			&FloatConverter{},
			&BoolConverter{},
			&JSONConverter{},
		} {
			_ = defaultRegistry.RegisterConverter(c)
		}
	})
	return defaultRegistry
}
