// Package fury provides the runtime serialization core shared by Fury's
// language bindings: a little-endian memory buffer with a varint framing
// primitive, a class allow/deny security checker, and a field grouping
// heuristic used by generated codecs.
//
// The three components are independent and may be used on their own:
//
//   - Buffer is a resizable byte store with bounds-checked and unchecked
//     fixed-width accessors plus a canonical positive varint32 codec.
//   - ClassChecker gates class names entering or leaving a serializer
//     under an allow/deny policy and notifies attached resolvers when
//     that policy changes.
//   - FieldGrouper partitions a class's fields into size-bounded groups
//     so that a code generator can emit inlinable write/read methods.
package fury
