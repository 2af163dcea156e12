package score

import "strconv"

// Input-layer parsing policy for raw score text. These run at the edges
// (API handlers, CLI) so the mutation engine only ever sees integers.

// AcceptText reports whether raw input text may be kept in a score
// field: empty, a bare minus sign, or an optional minus followed by
// digits. Anything else is rejected before it reaches the engine.
func AcceptText(s string) bool {
	if s == "" || s == "-" {
		return true
	}
	start := 0
	if s[0] == '-' {
		start = 1
	}
	for i := start; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseAmount interprets accepted text as a delta. Empty, a bare minus
// sign, or anything unparseable reads as zero (and a zero delta is never
// recorded).
func ParseAmount(s string) int {
	if !AcceptText(s) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
