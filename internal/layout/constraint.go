package layout

import "fmt"

// Kind identifies which sizing rule a Constraint carries.
type Kind uint8

const (
	KindLength     Kind = iota // Exact size in cells
	KindPercentage             // Percent of the axis length
	KindRatio                  // Fraction of the axis length
	KindMin                    // At least n cells, grows into leftover space
	KindMax                    // At most n cells
	KindFill                   // Proportional share of leftover space
)

var kindNames = [...]string{
	KindLength:     "len",
	KindPercentage: "pct",
	KindRatio:      "ratio",
	KindMin:        "min",
	KindMax:        "max",
	KindFill:       "fill",
}

// String returns the short name used in the constraint text form.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Constraint describes how one layout element is sized along the split axis.
// It is an immutable, comparable value; build one with Length, Percentage,
// Ratio, Min, Max or Fill.
type Constraint struct {
	kind Kind
	a, b int
}

// Length returns a constraint for an exact size of n cells.
func Length(n int) Constraint {
	return Constraint{kind: KindLength, a: n}
}

// Percentage returns a constraint for p percent (0-100) of the axis length.
func Percentage(p int) Constraint {
	return Constraint{kind: KindPercentage, a: p}
}

// Ratio returns a constraint for num/den of the axis length.
// A zero denominator consumes the whole axis.
func Ratio(num, den int) Constraint {
	return Constraint{kind: KindRatio, a: num, b: den}
}

// Min returns a constraint that is never smaller than n cells and grows
// into leftover space when no Fill element claims it.
func Min(n int) Constraint {
	return Constraint{kind: KindMin, a: n}
}

// Max returns a constraint that is never larger than n cells unless the
// layout has nothing else to stretch.
func Max(n int) Constraint {
	return Constraint{kind: KindMax, a: n}
}

// Fill returns a constraint that takes leftover space in proportion to
// weight relative to the other Fill elements.
func Fill(weight int) Constraint {
	return Constraint{kind: KindFill, a: weight}
}

// Kind returns the sizing rule of c.
func (c Constraint) Kind() Kind {
	return c.kind
}

// Value returns the length, percentage, bound or weight of c.
// For ratios it returns the numerator.
func (c Constraint) Value() int {
	return c.a
}

// Fraction returns the numerator and denominator of a ratio constraint.
// Other kinds report (Value, 1).
func (c Constraint) Fraction() (num, den int) {
	if c.kind != KindRatio {
		return c.a, 1
	}
	return c.a, c.b
}

// String returns the canonical text form accepted by ParseConstraint.
func (c Constraint) String() string {
	if c.kind == KindRatio {
		return fmt.Sprintf("%s:%d/%d", c.kind, c.a, c.b)
	}
	return fmt.Sprintf("%s:%d", c.kind, c.a)
}

// strength ranks constraint kinds for breaking infeasible minimums.
// Higher values are kept longer.
func (k Kind) strength() int {
	switch k {
	case KindMin:
		return 5
	case KindMax:
		return 4
	case KindLength:
		return 3
	case KindPercentage:
		return 2
	case KindRatio:
		return 1
	default:
		return 0
	}
}

// target resolves the cell count c asks for on an axis of length l,
// clamped to [0, l].
func (c Constraint) target(l int) int {
	l = clamp(l, 0, MaxExtent)
	var n int
	switch c.kind {
	case KindPercentage:
		n = roundDiv(clamp(c.a, 0, 100)*l, 100)
	case KindRatio:
		num, den := clamp(c.a, -MaxExtent, MaxExtent), clamp(c.b, -MaxExtent, MaxExtent)
		if den == 0 {
			if num == 0 {
				return 0
			}
			return l
		}
		if den < 0 {
			num, den = -num, -den
		}
		if num >= den {
			return l
		}
		n = roundDiv(num*l, den)
	default:
		n = c.a
	}
	return clamp(n, 0, l)
}

// roundDiv divides with round-half-up for non-negative quotients; negative
// numerators round toward zero and are clamped by callers.
func roundDiv(num, den int) int {
	if num <= 0 {
		return num / den
	}
	return (2*num + den) / (2 * den)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
