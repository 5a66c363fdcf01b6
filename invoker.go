package fury

import "fmt"

// InvokerBuilder yields the call-site expression a code generator emits
// for one field group's write/read method, decoupling FieldGrouper's
// partitioning decisions from the generator's naming scheme. The
// generator itself — compiling and wiring the emitted method bodies —
// is an external collaborator; this type only hands back the string the
// generator would splice into its output.
type InvokerBuilder struct{}

// NewInvokerBuilder returns a ready-to-use InvokerBuilder. It carries no
// state — grouping and naming are both pure functions of their inputs.
func NewInvokerBuilder() *InvokerBuilder {
	return &InvokerBuilder{}
}

// Build returns the call-site expression for the index-th group under
// methodPrefix, e.g. Build(group, "writePrimitives", 0) -> "writePrimitives0(obj)".
// The descriptors in group are not inspected — only the count of groups
// already emitted (index) affects the name.
func (ib *InvokerBuilder) Build(_ []Descriptor, methodPrefix string, index int) string {
	return fmt.Sprintf("%s%d(obj)", methodPrefix, index)
}

// BuildAll returns the call-site expressions for every group in groups,
// in order, under methodPrefix — what the generator's outer method
// invokes in sequence.
func (ib *InvokerBuilder) BuildAll(groups [][]Descriptor, methodPrefix string) []string {
	calls := make([]string, len(groups))
	for i, g := range groups {
		calls[i] = ib.Build(g, methodPrefix, i)
	}
	return calls
}
