// Package cube implements Cube and TCube, the sorted literal sets
// over state variables (flops) that the PDR frame trace stores, and
// Pobl, the proof-obligation record that drives recursive cube
// blocking.
//
// A Cube is a sorted, duplicate-free sequence of gate.Ref values, all
// of whose referents must be flops or sequential-delay registers. It
// is represented as a slice with share-on-copy semantics: once built
// via New, a Cube's backing array is never mutated, so passing a Cube
// by value is cheap and safe. This package relies on Go's garbage
// collector rather than reference counting: Pobl's parent chain is an
// ordinary pointer tree the GC reclaims once no Pobl retains a
// reference to an ancestor.
package cube
