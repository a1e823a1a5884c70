package layout

import "strings"

// Layout splits a Rect into sub-rectangles along one direction.
//
// Layout is an immutable value: every builder method returns a modified copy,
// so a Layout can be declared once and reused on every frame.
//
//	rows := layout.New(layout.Vertical, layout.Length(1), layout.Fill(1), layout.Length(1)).
//		Margin(1).
//		Split(area)
type Layout struct {
	direction   Direction
	constraints []Constraint
	flex        Flex
	spacing     int
	margin      Edges

	cache    *Cache
	cacheSet bool
	recorder Recorder
}

// New creates a Layout splitting along direction with one element per constraint.
func New(direction Direction, constraints ...Constraint) Layout {
	return Layout{direction: direction}.Constraints(constraints...)
}

// Direction returns a copy of l splitting along d.
func (l Layout) Direction(d Direction) Layout {
	l.direction = d
	return l
}

// Constraints returns a copy of l with the given element constraints.
func (l Layout) Constraints(constraints ...Constraint) Layout {
	l.constraints = append([]Constraint(nil), constraints...)
	return l
}

// Flex returns a copy of l that places leftover space according to f.
func (l Layout) Flex(f Flex) Layout {
	l.flex = f
	return l
}

// Spacing returns a copy of l with n cells between adjacent elements.
// A negative n overlaps adjacent elements by -n cells.
func (l Layout) Spacing(n int) Layout {
	l.spacing = n
	return l
}

// Margin returns a copy of l that insets the area by n cells on every side.
func (l Layout) Margin(n int) Layout {
	l.margin = EdgeAll(n)
	return l
}

// MarginEdges returns a copy of l that insets the area by e.
func (l Layout) MarginEdges(e Edges) Layout {
	l.margin = e
	return l
}

// WithCache returns a copy of l that memoizes results in c.
// A nil c disables caching. Layouts use DefaultCache unless told otherwise.
func (l Layout) WithCache(c *Cache) Layout {
	l.cache = c
	l.cacheSet = true
	return l
}

// WithRecorder returns a copy of l that reports solver steps to r.
// Recording layouts always solve and never touch the cache.
func (l Layout) WithRecorder(r Recorder) Layout {
	l.recorder = r
	return l
}

// Len returns the number of elements the layout produces.
func (l Layout) Len() int {
	return len(l.constraints)
}

// Split returns one Rect per constraint, in order.
func (l Layout) Split(area Rect) []Rect {
	elements, _ := l.SplitWithSpacers(area)
	return elements
}

// SplitWithSpacers returns one Rect per constraint plus the len+1 spacer
// rects around them: the leading edge, every gap, and the trailing edge.
// Spacers between overlapping elements have zero size.
func (l Layout) SplitWithSpacers(area Rect) (elements, spacers []Rect) {
	inner := area.Inset(l.margin)
	start, length := inner.axis(l.direction)
	sol := l.solve(length)

	elements = make([]Rect, len(sol.elements))
	for i, s := range sol.elements {
		elements[i] = inner.span(l.direction, start+s.start, s.size)
	}
	spacers = make([]Rect, len(sol.spacers))
	for i, s := range sol.spacers {
		spacers[i] = inner.span(l.direction, start+s.start, s.size)
	}
	return elements, spacers
}

// Sizes returns the solved main-axis size of every element for an axis of
// the given length, ignoring margins.
func (l Layout) Sizes(length int) []int {
	sol := l.solve(max(length, 0))
	out := make([]int, len(sol.elements))
	for i, s := range sol.elements {
		out[i] = s.size
	}
	return out
}

func (l Layout) solve(length int) solution {
	c := l.cache
	if !l.cacheSet {
		c = DefaultCache()
	}
	if c == nil || l.recorder != nil {
		return l.compute(length)
	}
	return c.get(l.key(length), func() solution {
		return l.compute(length)
	})
}

func (l Layout) compute(length int) solution {
	segs, elems := buildSegments(l.constraints, length, l.spacing)

	var opts []SolveOption
	if l.recorder != nil {
		opts = append(opts, WithRecorder(l.recorder))
	}
	if !l.flex.stretches() {
		opts = append(opts, WithoutForced())
	}
	sizes := Solve(length, segs, opts...)
	return justify(l.flex, length, segs, sizes, elems)
}

func (l Layout) key(length int) cacheKey {
	var b strings.Builder
	for i, c := range l.constraints {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	return cacheKey{
		length:      length,
		constraints: b.String(),
		direction:   l.direction,
		flex:        l.flex,
		spacing:     l.spacing,
		margin:      l.margin,
	}
}

// String describes the layout in the text forms accepted by the parsers.
func (l Layout) String() string {
	parts := make([]string, len(l.constraints))
	for i, c := range l.constraints {
		parts[i] = c.String()
	}
	return l.direction.String() + " " + l.flex.String() + " [" + strings.Join(parts, ", ") + "]"
}
