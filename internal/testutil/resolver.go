// Package testutil provides test doubles shared across the fury package's
// test files.
package testutil

import "sync"

// PolicyEvent records a single ClassResolver.OnPolicyChange call.
type PolicyEvent struct {
	Pattern string
	Allow   bool
}

// RecordingResolver is a ClassResolver test double that records every
// notification it receives, in delivery order, for asserting both
// ordering and content in checker tests.
type RecordingResolver struct {
	mu     sync.Mutex
	events []PolicyEvent
}

// NewRecordingResolver returns an empty RecordingResolver.
func NewRecordingResolver() *RecordingResolver {
	return &RecordingResolver{}
}

// OnPolicyChange implements the fury.ClassResolver interface.
func (r *RecordingResolver) OnPolicyChange(pattern string, allow bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, PolicyEvent{Pattern: pattern, Allow: allow})
}

// Events returns a copy of the events recorded so far, in delivery order.
func (r *RecordingResolver) Events() []PolicyEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PolicyEvent, len(r.events))
	copy(out, r.events)
	return out
}

// PanickingResolver is a ClassResolver test double that panics on every
// notification, used to exercise the checker's panic-collection
// contract.
type PanickingResolver struct {
	Message string
}

// OnPolicyChange implements the fury.ClassResolver interface by panicking.
func (r *PanickingResolver) OnPolicyChange(_ string, _ bool) {
	panic(r.Message)
}
