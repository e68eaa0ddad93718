package scan

// ABOUTME: Capability filter narrowing scan results to types satisfying a contract
// ABOUTME: Pure and order-preserving; relies on the scanner's own cache, none of its own

import (
	"reflect"

	"github.com/udonne/kara/pkg/typesys"
)

// FilterAssignableTo keeps exactly the descriptors whose type is
// assignable to the target capability, preserving input order. Pure, no
// caching, no side effects.
func FilterAssignableTo(descs []*typesys.Descriptor, capability reflect.Type) []*typesys.Descriptor {
	var out []*typesys.Descriptor
	for _, d := range descs {
		if d.AssignableTo(capability) {
			out = append(out, d)
		}
	}
	return out
}

// CapabilityOf returns the reflect.Type of an interface capability from a
// typed nil pointer, e.g. CapabilityOf[io.Reader]().
func CapabilityOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
