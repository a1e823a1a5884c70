package layout

// Edges is a margin around a layout area, in cells per side.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll returns a margin of n cells on every side.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric returns a margin of v cells above and below and h cells to
// the left and right.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// IsZero reports whether e leaves an area unchanged.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// along returns the leading and trailing margins on the main axis of dir.
func (e Edges) along(dir Direction) (lead, trail int) {
	if dir == Horizontal {
		return e.Left, e.Right
	}
	return e.Top, e.Bottom
}
