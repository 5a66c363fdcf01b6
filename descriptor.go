package fury

// DescriptorModifiers is a bitmask of the field modifiers FieldGrouper
// cares about. The grouper itself never inspects these — they exist so
// callers (and tests) have something concrete to build Descriptor values
// from; categorization into the four input lists happens upstream of
// this package, which reads nothing about a field but its identity and
// ordering.
type DescriptorModifiers uint8

const (
	// ModFinal marks a reference field whose declared type is final
	// (no subclassing), letting the codec skip a runtime type check.
	ModFinal DescriptorModifiers = 1 << iota
	// ModTransient marks a field excluded from serialization.
	ModTransient
	// ModBoxed marks a boxed-primitive field (e.g. Integer vs int).
	ModBoxed
)

// Has reports whether all bits in want are set.
func (m DescriptorModifiers) Has(want DescriptorModifiers) bool {
	return m&want == want
}

// Descriptor is the opaque field record FieldGrouper partitions. A
// reflection layer upstream (out of scope here) produces a sorted slice
// of these; the grouper reads only Name/DeclaredType identity and slice
// order, never the fields' runtime values.
type Descriptor struct {
	Name         string
	DeclaredType string
	Modifiers    DescriptorModifiers
}
