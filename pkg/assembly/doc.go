// Package assembly defines the shared in-memory model for genome assembly
// descriptions: ordered scaffolds of Component and Gap rows with 1-based
// inclusive coordinates.
//
// Both the AGP and TPF formats parse into and serialize from this model.
// Rows are a closed union of two variants, Component (a sequence interval)
// and Gap (a spacer), each carrying derived object coordinates within the
// owning scaffold. The Assembly container enforces the contiguity invariant
// incrementally: within a scaffold, object intervals start at 1 and abut
// with no gaps or overlaps.
//
// Assemblies are built once by a parser, optionally transformed into a
// fresh Assembly by the remap package, and consumed by a writer. Nothing in
// this package mutates an Assembly after construction except InsertRow and
// AppendRow used during the build.
package assembly
