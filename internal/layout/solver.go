package layout

import (
	"cmp"
	"slices"
)

// stepScale is the fixed-point denominator of the shared step size.
const stepScale = 32

type solveConfig struct {
	recorder Recorder
	forced   bool
}

// SolveOption configures a single Solve call.
type SolveOption func(*solveConfig)

// WithRecorder reports every growth step to r.
func WithRecorder(r Recorder) SolveOption {
	return func(c *solveConfig) {
		c.recorder = r
	}
}

// WithoutForced skips the forced phase, leaving any unclaimed space unassigned.
// Non-stretching flex modes turn that space into margins.
func WithoutForced() SolveOption {
	return func(c *solveConfig) {
		c.forced = false
	}
}

// Solve assigns a size to every segment so that the sizes add up to length
// whenever at least one segment can grow.
//
// Segments start at Min when fixed, otherwise at min(Min, 0), and grow
// through the Min, Preferred, Max, Overfill and Forced phases in order.
// Within the first three phases, tiers with lower Priority grow first; in the
// last two the order reverses. Inside a tier every active segment gets
// FillScale*step/32 cells of a shared step, capped at its phase target. In
// the forced phase each segment gets at least one cell per step, visiting
// tiers from the highest Priority down and segments by ascending index, so a
// scarce last cell goes to the earliest segment.
//
// Lengths and segment fields are bounded by MaxExtent and MaxFillScale, and
// minimums that do not fit are lowered (see fitMins). Solve never fails and
// never panics on degenerate input.
func Solve(length int, segments []Segment, opts ...SolveOption) []int {
	cfg := solveConfig{forced: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newSolver(clamp(length, 0, MaxExtent), segments, cfg.recorder)
	for _, phase := range []Phase{PhaseMin, PhasePreferred, PhaseMax, PhaseOverfill} {
		s.runPhase(phase)
	}
	if cfg.forced {
		s.runForced()
	}
	return s.sizes
}

type solver struct {
	length int
	segs   []Segment
	sizes  []int
	used   int
	tiers  [][]int // indices of growable segments, ascending Priority
	active []int
	rec    Recorder
}

func newSolver(length int, segments []Segment, rec Recorder) *solver {
	segs := make([]Segment, len(segments))
	copy(segs, segments)
	for i := range segs {
		segs[i].normalize()
	}
	fitMins(segs, length)

	s := &solver{
		length: length,
		segs:   segs,
		sizes:  make([]int, len(segs)),
		rec:    rec,
	}

	var growable []int
	for i, seg := range segs {
		if seg.FillScale == 0 {
			s.sizes[i] = seg.Min
		} else {
			s.sizes[i] = min(seg.Min, 0)
			growable = append(growable, i)
		}
		s.used += s.sizes[i]
	}

	slices.SortStableFunc(growable, func(a, b int) int {
		return cmp.Compare(segs[a].Priority, segs[b].Priority)
	})
	for start := 0; start < len(growable); {
		end := start + 1
		for end < len(growable) && segs[growable[end]].Priority == segs[growable[start]].Priority {
			end++
		}
		s.tiers = append(s.tiers, growable[start:end])
		start = end
	}
	s.active = make([]int, 0, len(growable))
	return s
}

func (s *solver) capacity() int {
	return s.length - s.used
}

// distance returns how far segment i is from its target in phase.
// Overfill targets are unbounded, so the distance is the remaining capacity.
func (s *solver) distance(phase Phase, i int) int {
	seg := &s.segs[i]
	switch phase {
	case PhaseMin:
		return seg.Min - s.sizes[i]
	case PhasePreferred:
		return seg.Preferred - s.sizes[i]
	case PhaseMax:
		return seg.Max - s.sizes[i]
	case PhaseOverfill:
		if !seg.Overfill {
			return 0
		}
		return s.capacity()
	default:
		return 0
	}
}

func (s *solver) grow(phase Phase, i, by, step int) {
	before := s.sizes[i]
	s.sizes[i] += by
	s.used += by
	if s.rec != nil {
		s.rec.Record(Step{Phase: phase, Segment: i, Before: before, After: s.sizes[i], StepSize: step})
	}
}

func (s *solver) runPhase(phase Phase) {
	if phase == PhaseOverfill {
		for t := len(s.tiers) - 1; t >= 0 && s.capacity() > 0; t-- {
			s.fillTier(phase, s.tiers[t])
		}
		return
	}
	for t := 0; t < len(s.tiers) && s.capacity() > 0; t++ {
		s.fillTier(phase, s.tiers[t])
	}
}

// fillTier grows the segments of one tier toward their phase targets until
// they all arrive or the axis is full.
func (s *solver) fillTier(phase Phase, tier []int) {
	for {
		capacity := s.capacity()
		if capacity <= 0 {
			return
		}

		s.active = s.active[:0]
		weight := 0
		for _, i := range tier {
			if s.distance(phase, i) > 0 {
				s.active = append(s.active, i)
				weight += s.segs[i].FillScale
			}
		}
		if len(s.active) == 0 {
			return
		}

		step := capacity * stepScale / weight
		granted := 0
		for _, i := range s.active {
			by := min(s.segs[i].FillScale*step/stepScale, s.distance(phase, i))
			if by > 0 {
				s.grow(phase, i, by, step)
				granted += by
			}
		}
		if granted > 0 {
			continue
		}

		// Every share rounded to zero: one cell each, heaviest first, lowest
		// index on ties.
		slices.SortStableFunc(s.active, func(a, b int) int {
			return cmp.Compare(s.segs[b].FillScale, s.segs[a].FillScale)
		})
		for _, i := range s.active {
			if s.capacity() <= 0 {
				return
			}
			s.grow(phase, i, 1, step)
		}
	}
}

// runForced grows every flexible segment until the axis is full.
func (s *solver) runForced() {
	if s.capacity() <= 0 || len(s.tiers) == 0 {
		return
	}

	pool := s.active[:0]
	weight := 0
	for t := len(s.tiers) - 1; t >= 0; t-- {
		for _, i := range s.tiers[t] {
			pool = append(pool, i)
			weight += s.segs[i].FillScale
		}
	}
	// Tiers hold indices in ascending order, so within a tier the pool is
	// index-ordered as well.
	for capacity := s.capacity(); capacity > 0; capacity = s.capacity() {
		step := capacity * stepScale / weight
		for _, i := range pool {
			remaining := s.capacity()
			if remaining <= 0 {
				break
			}
			by := min(max(s.segs[i].FillScale*step/stepScale, 1), remaining)
			s.grow(PhaseForced, i, by, step)
		}
	}
}
