// Package layout implements the one-dimensional constraint layout core for terminal UIs.
//
// A [Layout] splits a [Rect] along one [Direction] into one sub-rectangle per
// [Constraint]. Constraints are mapped to solver [Segment] values, sized by a
// deterministic multi-phase incremental fill ([Solve]), and positioned by a flex
// justifier. Results are memoized in a bounded LRU [Cache].
// Types are re-exported through the root tui package for public consumption.
//
// The main entry point is [Layout.Split].
package layout
