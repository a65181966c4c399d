// Package layout implements a two-pass box layout engine.
//
// Every node carries a sizing policy and an alignment per axis, a main axis
// along which its children are stacked, an inner margin and a gap between
// children. [Calculate] first resolves sizes bottom-up (one axis at a time),
// then resolves positions top-down, writing the result back through the
// [Layoutable] interface.
//
// Types are re-exported through the root boxtree package for public consumption.
package layout
