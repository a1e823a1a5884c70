// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/go-tui-layout/internal/layout"

// Direction specifies the axis a layout splits along.
type Direction = layout.Direction

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Flex specifies where leftover space goes after sizes are solved.
type Flex = layout.Flex

const (
	FlexStretch      = layout.FlexStretch
	FlexLegacy       = layout.FlexLegacy
	FlexStart        = layout.FlexStart
	FlexEnd          = layout.FlexEnd
	FlexCenter       = layout.FlexCenter
	FlexSpaceBetween = layout.FlexSpaceBetween
	FlexSpaceAround  = layout.FlexSpaceAround
)

// Constraint describes how one element is sized along the split axis.
type Constraint = layout.Constraint

// ConstraintKind identifies the sizing rule of a Constraint.
type ConstraintKind = layout.Kind

const (
	KindLength     = layout.KindLength
	KindPercentage = layout.KindPercentage
	KindRatio      = layout.KindRatio
	KindMin        = layout.KindMin
	KindMax        = layout.KindMax
	KindFill       = layout.KindFill
)

// Layout splits a Rect into sub-rectangles along one direction.
type Layout = layout.Layout

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Segment is the solver's per-element allocation record.
type Segment = layout.Segment

// Cache memoizes solved layouts.
type Cache = layout.Cache

// CacheStats is a snapshot of cache usage.
type CacheStats = layout.CacheStats

// Recorder receives every solver step.
type Recorder = layout.Recorder

// Step records one growth of one segment.
type Step = layout.Step

// StepLog is an in-memory Recorder.
type StepLog = layout.StepLog

// Phase is one stage of the solver.
type Phase = layout.Phase

// SolveOption configures a Solve call.
type SolveOption = layout.SolveOption

// ErrInvalidConstraint is returned by the constraint parsers.
var ErrInvalidConstraint = layout.ErrInvalidConstraint

// Length creates a constraint for an exact size of n cells.
func Length(n int) Constraint { return layout.Length(n) }

// Percentage creates a constraint for p percent of the axis length.
func Percentage(p int) Constraint { return layout.Percentage(p) }

// Ratio creates a constraint for num/den of the axis length.
func Ratio(num, den int) Constraint { return layout.Ratio(num, den) }

// Min creates a constraint of at least n cells.
func Min(n int) Constraint { return layout.Min(n) }

// Max creates a constraint of at most n cells.
func Max(n int) Constraint { return layout.Max(n) }

// Fill creates a constraint taking leftover space in proportion to weight.
func Fill(weight int) Constraint { return layout.Fill(weight) }

// NewLayout creates a Layout splitting along direction.
func NewLayout(direction Direction, constraints ...Constraint) Layout {
	return layout.New(direction, constraints...)
}

// Split divides area along direction, one Rect per constraint, using the
// default cache and flex mode.
func Split(area Rect, constraints []Constraint, direction Direction) []Rect {
	return layout.New(direction, constraints...).Split(area)
}

// SplitWithSpacers divides area like Split and also returns the spacer rects
// around and between the elements.
func SplitWithSpacers(area Rect, constraints []Constraint, direction Direction, flex Flex, spacing int) ([]Rect, []Rect) {
	return layout.New(direction, constraints...).Flex(flex).Spacing(spacing).SplitWithSpacers(area)
}

// Solve runs the incremental fill solver over raw segments.
func Solve(length int, segments []Segment, opts ...SolveOption) []int {
	return layout.Solve(length, segments, opts...)
}

// WithRecorder reports every solver step to r.
func WithRecorder(r Recorder) SolveOption { return layout.WithRecorder(r) }

// WithoutForced skips the solver's forced phase.
func WithoutForced() SolveOption { return layout.WithoutForced() }

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// NewCache creates a layout cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	return layout.NewCache(capacity)
}

// DefaultCache returns the process-wide layout cache.
func DefaultCache() *Cache {
	return layout.DefaultCache()
}

// InitCache sets the capacity of the process-wide layout cache.
func InitCache(capacity int) {
	layout.InitCache(capacity)
}

// ParseConstraints parses a comma or space separated constraint list.
func ParseConstraints(s string) ([]Constraint, error) {
	return layout.ParseConstraints(s)
}
