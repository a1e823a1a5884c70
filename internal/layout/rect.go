package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// The result never has negative dimensions: an inset larger than the
// rectangle collapses it to zero size at the clamped origin.
func (r Rect) Inset(edges Edges) Rect {
	if edges.IsZero() {
		return r
	}
	lead, trail := edges.along(Horizontal)
	x, width := insetAxis(r.X, r.Width, lead, trail)
	lead, trail = edges.along(Vertical)
	y, height := insetAxis(r.Y, r.Height, lead, trail)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func insetAxis(start, length, lead, trail int) (int, int) {
	if size := length - lead - trail; size >= 0 {
		return start + lead, size
	}
	return start + min(lead, max(length, 0)), 0
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// axis returns the start and length of r along the main axis of dir.
func (r Rect) axis(dir Direction) (start, length int) {
	if dir == Horizontal {
		return r.X, r.Width
	}
	return r.Y, r.Height
}

// span returns a Rect sharing r's cross-axis extent and covering
// [start, start+size) on the main axis of dir.
func (r Rect) span(dir Direction, start, size int) Rect {
	if dir == Horizontal {
		return Rect{X: start, Y: r.Y, Width: size, Height: r.Height}
	}
	return Rect{X: r.X, Y: start, Width: r.Width, Height: size}
}
