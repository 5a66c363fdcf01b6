package fury

import "fmt"

// Category bounds: the maximum number of descriptors a single emitted
// group may carry. These are empirical (tied to measured per-field
// codegen sizes on the host runtime) and are configuration of this
// core, not universal constants.
const (
	primitiveBound           = 24
	boxedWriteBound          = 7
	boxedReadBoundNoTracking = 7
	boxedReadBoundTracking   = 4
	finalWriteBound          = 9
	finalReadBound           = 5
	otherWriteBound          = 9
	otherReadBound           = 5
)

// FieldGrouper partitions a class's pre-categorized, pre-sorted field
// descriptors into size-bounded groups for a code generator to wrap into
// individual write/read methods — keeping each generated method under
// the host runtime's inlining threshold. It is immutable and computed
// once at construction.
type FieldGrouper struct {
	boxedRefTracking bool

	PrimitiveGroups  [][]Descriptor
	BoxedWriteGroups [][]Descriptor
	BoxedReadGroups  [][]Descriptor
	FinalWriteGroups [][]Descriptor
	FinalReadGroups  [][]Descriptor
	OtherWriteGroups [][]Descriptor
	OtherReadGroups  [][]Descriptor
}

// NewFieldGrouper builds a FieldGrouper from four pre-sorted descriptor
// categories: primitives, boxed (reference-typed wrappers of
// primitives), final-typed references, and all other references. Each
// slice must be non-nil — an empty, non-nil slice is a category with no
// fields and is
// fine; a nil slice is treated as malformed input (there is no way in
// this core to distinguish "category not yet computed" from "category
// has zero fields" other than requiring the caller to pass an explicit,
// possibly-empty slice) and fails with ErrProgrammerError.
func NewFieldGrouper(primitives, boxed, finalRef, otherRef []Descriptor, boxedRefTracking bool) (*FieldGrouper, error) {
	if primitives == nil || boxed == nil || finalRef == nil || otherRef == nil {
		return nil, wrapError(ProgrammerError, "new field grouper", fmt.Errorf("category lists must be non-nil"))
	}

	boxedReadBound := boxedReadBoundNoTracking
	if boxedRefTracking {
		boxedReadBound = boxedReadBoundTracking
	}

	return &FieldGrouper{
		boxedRefTracking: boxedRefTracking,
		PrimitiveGroups:  partition(primitives, primitiveBound),
		BoxedWriteGroups: partition(boxed, boxedWriteBound),
		BoxedReadGroups:  partition(boxed, boxedReadBound),
		FinalWriteGroups: partition(finalRef, finalWriteBound),
		FinalReadGroups:  partition(finalRef, finalReadBound),
		OtherWriteGroups: partition(otherRef, otherWriteBound),
		OtherReadGroups:  partition(otherRef, otherReadBound),
	}, nil
}

// BoxedRefTracking reports whether this grouper was built with reference
// tracking on, which is why BoxedReadGroups uses the smaller bound.
func (g *FieldGrouper) BoxedRefTracking() bool {
	return g.boxedRefTracking
}

// partition scans items front to back, emitting groups of exactly bound
// descriptors until fewer than bound remain, then a final (possibly
// smaller) group — order-preserving, so the concatenation of a
// category's groups equals its input in order.
func partition(items []Descriptor, bound int) [][]Descriptor {
	if len(items) == 0 {
		return nil
	}

	groups := make([][]Descriptor, 0, (len(items)+bound-1)/bound)
	for start := 0; start < len(items); start += bound {
		end := start + bound
		if end > len(items) {
			end = len(items)
		}
		groups = append(groups, items[start:end])
	}
	return groups
}
