package layout

// span is a solved interval relative to the start of the split axis.
type span struct {
	start, size int
}

// solution holds the solved element and spacer spans for one axis length.
// Solutions are shared by the cache and must not be modified.
type solution struct {
	elements []span
	spacers  []span
}

// justify turns solved segment sizes into element and spacer spans.
// Space the solver left unassigned is placed according to flex; elements,
// separators and that slack always add up to length.
func justify(flex Flex, length int, segs []Segment, sizes []int, elems []int) solution {
	n := len(elems)
	used := 0
	for _, size := range sizes {
		used += size
	}
	slack := max(length-used, 0)

	if flex == FlexLegacy && slack > 0 && n > 0 {
		// The weakest class stretches; the last element wins ties.
		target := elems[n-1]
		for _, i := range elems {
			if segs[i].strength <= segs[target].strength {
				target = i
			}
		}
		sizes[target] += slack
		slack = 0
	}

	sol := solution{
		elements: make([]span, n),
		spacers:  make([]span, n+1),
	}
	if n == 0 {
		sol.spacers[0] = span{start: 0, size: slack}
		return sol
	}
	shares := distribute(slack, slotWeights(flex, n))

	pos := shares[0]
	sol.spacers[0] = span{start: 0, size: shares[0]}
	for k, i := range elems {
		sol.elements[k] = span{start: pos, size: sizes[i]}
		pos += sizes[i]
		if k == n-1 {
			break
		}
		gap := shares[k+1]
		for j := i + 1; j < elems[k+1]; j++ {
			gap += sizes[j]
		}
		sol.spacers[k+1] = span{start: pos, size: max(gap, 0)}
		pos += gap
	}
	sol.spacers[n] = span{start: pos, size: shares[n]}
	return sol
}

// slotWeights returns how slack is shared between the n+1 spacer slots
// (leading edge, each gap, trailing edge).
func slotWeights(flex Flex, n int) []int {
	w := make([]int, n+1)
	if n == 0 {
		w[0] = 1
		return w
	}
	switch flex {
	case FlexEnd:
		w[0] = 1
	case FlexCenter:
		w[0], w[n] = 1, 1
	case FlexSpaceBetween:
		if n == 1 {
			w[n] = 1
			break
		}
		for i := 1; i < n; i++ {
			w[i] = 1
		}
	case FlexSpaceAround:
		for i := range w {
			w[i] = 2
		}
		w[0], w[n] = 1, 1
	default: // FlexStretch, FlexLegacy, FlexStart
		w[n] = 1
	}
	return w
}

// distribute splits total over weights using cumulative floor rounding so
// the shares sum exactly to total.
func distribute(total int, weights []int) []int {
	shares := make([]int, len(weights))
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 || total == 0 {
		return shares
	}
	cum, prev := 0, 0
	for i, w := range weights {
		cum += w
		cur := total * cum / sum
		shares[i] = cur - prev
		prev = cur
	}
	return shares
}
