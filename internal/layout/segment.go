package layout

import "math"

// Growth priorities assigned by SegmentFor. Lower values grow first while the
// solver works toward minimum, preferred and maximum sizes; the order reverses
// once segments start overfilling. Min segments rank after Fill and Max, so
// they take leftover space only when no fill or max can use it.
const (
	PriorityFill      = 0
	PriorityMax       = 10
	PriorityMin       = 20
	PrioritySeparator = 100
)

// Bounds applied to segment fields and axis lengths before solving. They keep
// weight sums and fixed-point products inside int.
const (
	MaxExtent    = math.MaxInt32
	MaxFillScale = math.MaxInt32
)

// Segment is the solver's allocation record for one layout element or one
// synthetic separator.
type Segment struct {
	// Min, Preferred and Max are the targets of the first three solver phases.
	// Min may be negative for overlap separators.
	Min, Preferred, Max int

	// FillScale is the growth weight. Zero means the segment is fixed at Min.
	FillScale int

	// Overfill lets the segment grow past Max before the forced phase.
	Overfill bool

	// Priority orders growth tiers; see the Priority constants.
	Priority int

	// Separator marks gap and overlap segments that produce no element rect.
	Separator bool

	// strength is the constraint class rank used when minimums do not fit.
	strength int
}

// SegmentFor maps c onto a segment for an axis of the given length.
// Malformed constraints (negative lengths, percentages over 100, zero
// denominators) degrade to a clamped segment; mapping never fails.
func SegmentFor(c Constraint, length int) Segment {
	length = clamp(length, 0, MaxExtent)
	n := c.target(length)
	seg := Segment{strength: c.kind.strength()}

	switch c.kind {
	case KindMin:
		seg.Min, seg.Preferred, seg.Max = n, n, length
		seg.FillScale = 1
		seg.Priority = PriorityMin
	case KindMax:
		seg.Preferred, seg.Max = n, n
		seg.FillScale = 1
		seg.Priority = PriorityMax
	case KindFill:
		seg.Max = length
		seg.FillScale = clamp(c.a, 0, MaxFillScale)
		seg.Overfill = true
		seg.Priority = PriorityFill
	default:
		seg.Min, seg.Preferred, seg.Max = n, n, n
	}
	return seg
}

// SeparatorSegment returns a fixed gap of size cells. A negative size is an
// overlap that lets adjacent elements share cells, such as merged borders.
func SeparatorSegment(size int) Segment {
	return Segment{
		Min:       size,
		Preferred: size,
		Max:       size,
		Priority:  PrioritySeparator,
		Separator: true,
	}
}

// buildSegments maps constraints onto segments, inserting a separator between
// every pair of elements when spacing is non-zero. elems[i] is the segment
// index of constraint i.
func buildSegments(constraints []Constraint, length, spacing int) (segs []Segment, elems []int) {
	n := len(constraints)
	if n == 0 {
		return nil, nil
	}
	gaps := 0
	if spacing != 0 {
		gaps = n - 1
	}
	segs = make([]Segment, 0, n+gaps)
	elems = make([]int, n)
	for i, c := range constraints {
		if i > 0 && spacing != 0 {
			segs = append(segs, SeparatorSegment(spacing))
		}
		elems[i] = len(segs)
		segs = append(segs, SegmentFor(c, length))
	}
	return segs, elems
}

// normalize bounds every field to [-MaxExtent, MaxExtent], enforces
// Min <= Preferred <= Max and keeps FillScale within [0, MaxFillScale].
func (s *Segment) normalize() {
	s.Min = clamp(s.Min, -MaxExtent, MaxExtent)
	s.Preferred = clamp(max(s.Preferred, s.Min), -MaxExtent, MaxExtent)
	s.Max = clamp(max(s.Max, s.Preferred), -MaxExtent, MaxExtent)
	s.FillScale = clamp(s.FillScale, 0, MaxFillScale)
}

// fitMins lowers minimums in place until they fit in length. Positive gaps
// give way first, then elements from the weakest constraint class upward,
// last element first within a class. Overlaps are never touched.
func fitMins(segs []Segment, length int) {
	excess := -length
	for _, s := range segs {
		excess += s.Min
	}
	if excess <= 0 {
		return
	}

	shrink := func(s *Segment) {
		cut := min(s.Min, excess)
		s.Min -= cut
		if s.FillScale == 0 {
			s.Preferred = s.Min
			s.Max = s.Min
		}
		excess -= cut
	}

	for i := len(segs) - 1; i >= 0 && excess > 0; i-- {
		if segs[i].Separator && segs[i].Min > 0 {
			shrink(&segs[i])
		}
	}
	for strength := 0; strength <= KindMin.strength() && excess > 0; strength++ {
		for i := len(segs) - 1; i >= 0 && excess > 0; i-- {
			if !segs[i].Separator && segs[i].strength == strength && segs[i].Min > 0 {
				shrink(&segs[i])
			}
		}
	}
}
