package scan

// ABOUTME: Search context binding ordered roots to a registry under a unique identity
// ABOUTME: Identity keys the scan cache; LoadType resolves derived names to descriptors

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/udonne/kara/pkg/errors"
	"github.com/udonne/kara/pkg/typesys"
)

// Context is an ordered list of search roots bound to a loader identity.
// It is both the mechanism to load a type by name and the key under which
// scan results are cached. Identity is assigned at construction and never
// derived from content: two contexts with the same roots cache separately.
type Context struct {
	id       string
	roots    []string
	registry *typesys.Registry
	logger   *slog.Logger
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithLogger sets the diagnostics logger. Defaults to slog.Default().
// Logging is purely observational and never affects scan results.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		c.logger = l
	}
}

// NewContext creates a search context over the given roots, in order. A
// root of the form "jar:<path>" is a zip archive; anything else is a
// directory tree. Names derived during scans resolve through the registry.
func NewContext(registry *typesys.Registry, roots []string, opts ...ContextOption) *Context {
	c := &Context{
		id:       uuid.NewString(),
		roots:    roots,
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the context's loader identity.
func (c *Context) ID() string { return c.id }

// Roots returns the search roots in order.
func (c *Context) Roots() []string {
	out := make([]string, len(c.roots))
	copy(out, c.roots)
	return out
}

// Registry returns the registry this context resolves names through.
func (c *Context) Registry() *typesys.Registry { return c.registry }

// LoadType resolves a fully-qualified dotted name to a descriptor. An
// unregistered name fails with a type-not-found error; scans treat that as
// stale build output and skip the entry.
func (c *Context) LoadType(fqn string) (*typesys.Descriptor, error) {
	d, ok := c.registry.Get(fqn)
	if !ok {
		return nil, errors.NewTypeNotFound(fqn)
	}
	return d, nil
}
