package layout

// Direction specifies the axis a Layout splits along.
type Direction uint8

const (
	Horizontal Direction = iota // Elements laid out left-to-right
	Vertical                    // Elements laid out top-to-bottom
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Flex specifies where space left over after solving goes.
type Flex uint8

const (
	FlexStretch      Flex = iota // Flexible elements absorb all leftover space
	FlexLegacy                   // Last element of the weakest class absorbs leftover space
	FlexStart                    // Pack at start, slack trails
	FlexEnd                      // Pack at end, slack leads
	FlexCenter                   // Slack split between both edges
	FlexSpaceBetween             // Slack between elements, none at edges
	FlexSpaceAround              // Slack around elements, edges get half a gap
)

var flexNames = [...]string{
	FlexStretch:      "stretch",
	FlexLegacy:       "legacy",
	FlexStart:        "start",
	FlexEnd:          "end",
	FlexCenter:       "center",
	FlexSpaceBetween: "space-between",
	FlexSpaceAround:  "space-around",
}

// String returns the kebab-case name of the flex mode.
func (f Flex) String() string {
	if int(f) < len(flexNames) {
		return flexNames[f]
	}
	return "unknown"
}

// Flexes returns every flex mode in declaration order.
func Flexes() []Flex {
	return []Flex{FlexStretch, FlexLegacy, FlexStart, FlexEnd, FlexCenter, FlexSpaceBetween, FlexSpaceAround}
}

// stretches reports whether the solver should run its forced phase for f.
func (f Flex) stretches() bool {
	return f == FlexStretch
}
