package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/cardtally-go/internal/model"
)

// FormatAmount renders a score total: "0" for zero, otherwise
// sign-prefixed with dot thousands grouping ("+1.000", "-50.000").
func FormatAmount(amount int) string {
	if amount == 0 {
		return "0"
	}
	prefix := "-"
	if amount > 0 {
		prefix = "+"
	}
	digits := strconv.Itoa(amount)
	if amount < 0 {
		digits = digits[1:]
	}
	return prefix + groupDigits(digits)
}

// groupDigits inserts a dot every three digits from the right
func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(digits[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatLeaderboard renders the shareable plain-text summary: a header
// line, then one line per player in ranked order with a crown for the
// leader and "#n" markers below.
func FormatLeaderboard(session *model.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🧧 %s", session.Name)
	for i, p := range SortByTotalDescending(session.Players) {
		rank := fmt.Sprintf("#%d", i+1)
		if i == 0 {
			rank = "👑"
		}
		fmt.Fprintf(&b, "\n%s %s %s: %s", rank, p.Avatar, p.Name, FormatAmount(p.Total))
	}
	return b.String()
}
