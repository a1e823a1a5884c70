package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidConstraint is returned when constraint, direction or flex text cannot be parsed.
var ErrInvalidConstraint = errors.New("invalid constraint")

// ParseConstraint parses the text form of a single constraint.
//
// Accepted forms:
//
//	len:10  length:10  10        exact length
//	pct:50  percent:50 50%       percentage
//	ratio:1/3  1/3               ratio
//	min:5  max:8                 bounds
//	fill:2  fill                 proportional fill
func ParseConstraint(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Constraint{}, fmt.Errorf("%w: empty", ErrInvalidConstraint)
	}

	name, arg, hasArg := strings.Cut(s, ":")
	if !hasArg {
		switch {
		case strings.EqualFold(s, "fill"):
			return Fill(1), nil
		case strings.HasSuffix(s, "%"):
			name, arg = "pct", strings.TrimSuffix(s, "%")
		case strings.Contains(s, "/"):
			name, arg = "ratio", s
		default:
			name, arg = "len", s
		}
	}
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)

	if name == "ratio" {
		n, d, ok := strings.Cut(arg, "/")
		if !ok {
			return Constraint{}, fmt.Errorf("%w: %q: ratio needs num/den", ErrInvalidConstraint, s)
		}
		num, err := parseInt(n)
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: %q: %w", ErrInvalidConstraint, s, err)
		}
		den, err := parseInt(d)
		if err != nil {
			return Constraint{}, fmt.Errorf("%w: %q: %w", ErrInvalidConstraint, s, err)
		}
		return Ratio(num, den), nil
	}

	n, err := parseInt(arg)
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: %q: %w", ErrInvalidConstraint, s, err)
	}

	switch name {
	case "len", "length":
		return Length(n), nil
	case "pct", "percent", "percentage":
		return Percentage(n), nil
	case "min":
		return Min(n), nil
	case "max":
		return Max(n), nil
	case "fill":
		return Fill(n), nil
	default:
		return Constraint{}, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidConstraint, s, name)
	}
}

// ParseConstraints parses a comma or whitespace separated list of constraints.
func ParseConstraints(s string) ([]Constraint, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]Constraint, 0, len(fields))
	for _, f := range fields {
		c, err := ParseConstraint(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ParseDirection parses "horizontal"/"h"/"row" or "vertical"/"v"/"column".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h", "row":
		return Horizontal, nil
	case "vertical", "v", "column", "col":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: unknown direction %q", ErrInvalidConstraint, s)
	}
}

// ParseFlex parses a flex mode name as printed by Flex.String.
// Underscores are accepted in place of dashes.
func ParseFlex(s string) (Flex, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if name == "" {
		return FlexStretch, nil
	}
	for _, f := range Flexes() {
		if f.String() == name {
			return f, nil
		}
	}
	return FlexStretch, fmt.Errorf("%w: unknown flex %q", ErrInvalidConstraint, s)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return n, nil
}
