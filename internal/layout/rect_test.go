package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %d, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %d, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %d, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %d, want 15", r.Height)
	}
}

func TestRect_AreaAndEmpty(t *testing.T) {
	type tc struct {
		rect    Rect
		area    int
		isEmpty bool
	}

	tests := map[string]tc{
		"standard rect":   {rect: NewRect(0, 0, 10, 5), area: 50},
		"zero width":      {rect: NewRect(0, 0, 0, 10), area: 0, isEmpty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), area: 0, isEmpty: true},
		"negative width":  {rect: NewRect(0, 0, -5, 10), area: 0, isEmpty: true},
		"negative height": {rect: NewRect(0, 0, 10, -5), area: 0, isEmpty: true},
		"zero rect":       {rect: Rect{}, area: 0, isEmpty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
			if got := tt.rect.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     int
		contains bool
	}

	r := NewRect(10, 20, 30, 40)

	tests := map[string]tc{
		"point inside":                  {x: 20, y: 30, contains: true},
		"top-left corner (inside)":      {x: 10, y: 20, contains: true},
		"right edge (outside)":          {x: 40, y: 30},
		"bottom edge (outside)":         {x: 20, y: 60},
		"bottom-right corner (outside)": {x: 40, y: 60},
		"point left of rect":            {x: 5, y: 30},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.contains {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.contains)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect  Rect
		edges Edges
		want  Rect
	}

	tests := map[string]tc{
		"uniform inset": {
			rect:  NewRect(0, 0, 20, 10),
			edges: EdgeAll(1),
			want:  NewRect(1, 1, 18, 8),
		},
		"symmetric inset": {
			rect:  NewRect(5, 5, 20, 10),
			edges: EdgeSymmetric(2, 3),
			want:  NewRect(8, 7, 14, 6),
		},
		"zero inset": {
			rect:  NewRect(3, 4, 5, 6),
			edges: Edges{},
			want:  NewRect(3, 4, 5, 6),
		},
		"inset larger than width collapses": {
			rect:  NewRect(0, 0, 4, 10),
			edges: EdgeSymmetric(0, 3),
			want:  NewRect(3, 0, 0, 10),
		},
		"uneven inset": {
			rect:  NewRect(0, 0, 10, 10),
			edges: Edges{Top: 1, Right: 2, Bottom: 3, Left: 4},
			want:  NewRect(4, 1, 4, 6),
		},
		"inset taller than height collapses": {
			rect:  NewRect(2, 2, 10, 3),
			edges: Edges{Top: 2, Bottom: 2},
			want:  NewRect(2, 4, 10, 0),
		},
		"inset on empty rect": {
			rect:  NewRect(0, 0, 0, 0),
			edges: EdgeAll(2),
			want:  NewRect(0, 0, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.want {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.want)
			}
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
		},
		"contained": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 3, 3),
			want: NewRect(2, 2, 3, 3),
		},
		"touching edges": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: Rect{},
		},
		"disjoint": {
			a:    NewRect(0, 0, 5, 5),
			b:    NewRect(20, 20, 5, 5),
			want: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_AxisSpan(t *testing.T) {
	r := NewRect(2, 3, 40, 10)

	start, length := r.axis(Horizontal)
	if start != 2 || length != 40 {
		t.Errorf("axis(Horizontal) = (%d, %d), want (2, 40)", start, length)
	}
	start, length = r.axis(Vertical)
	if start != 3 || length != 10 {
		t.Errorf("axis(Vertical) = (%d, %d), want (3, 10)", start, length)
	}

	if got, want := r.span(Horizontal, 7, 5), NewRect(7, 3, 5, 10); got != want {
		t.Errorf("span(Horizontal) = %+v, want %+v", got, want)
	}
	if got, want := r.span(Vertical, 4, 2), NewRect(2, 4, 40, 2); got != want {
		t.Errorf("span(Vertical) = %+v, want %+v", got, want)
	}
}

func TestEdges(t *testing.T) {
	e := Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if lead, trail := e.along(Horizontal); lead != 4 || trail != 2 {
		t.Errorf("along(Horizontal) = %d, %d, want 4, 2", lead, trail)
	}
	if lead, trail := e.along(Vertical); lead != 1 || trail != 3 {
		t.Errorf("along(Vertical) = %d, %d, want 1, 3", lead, trail)
	}
	if e.IsZero() {
		t.Error("IsZero() = true for non-zero edges")
	}
	if !(Edges{}).IsZero() {
		t.Error("IsZero() = false for zero edges")
	}
	if got := EdgeAll(2); got != (Edges{2, 2, 2, 2}) {
		t.Errorf("EdgeAll(2) = %+v", got)
	}
	if got := EdgeSymmetric(1, 3); got != (Edges{Top: 1, Right: 3, Bottom: 1, Left: 3}) {
		t.Errorf("EdgeSymmetric(1, 3) = %+v", got)
	}
}
