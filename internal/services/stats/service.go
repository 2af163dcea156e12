// Package stats computes derived views of session data: rankings,
// streaks, history expressions and cumulative series. Everything here is
// pure; inputs are never mutated.
package stats

import (
	"sort"
	"strconv"

	"github.com/mcoot/cardtally-go/internal/model"
)

// SortByTotalDescending returns the players ranked by total, highest
// first. The sort is stable: equal totals keep their input order.
func SortByTotalDescending(players []model.Player) []model.Player {
	sorted := make([]model.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Total > sorted[j].Total
	})
	return sorted
}

// MaxWinStreak returns the longest run of consecutive strictly-positive
// history entries. Zero entries break the streak.
func MaxWinStreak(history []int) int {
	max, current := 0, 0
	for _, v := range history {
		if v > 0 {
			current++
			if current > max {
				max = current
			}
		} else {
			current = 0
		}
	}
	return max
}

// MaxLoseStreak returns the longest run of consecutive strictly-negative
// history entries. Zero entries break the streak.
func MaxLoseStreak(history []int) int {
	max, current := 0, 0
	for _, v := range history {
		if v < 0 {
			current++
			if current > max {
				max = current
			}
		} else {
			current = 0
		}
	}
	return max
}

// PartKind classifies a history expression part
type PartKind string

const (
	PartPositive PartKind = "positive"
	PartNegative PartKind = "negative"
	PartOperator PartKind = "operator"
)

// ExpressionPart is one piece of a rendered running-sum expression
type ExpressionPart struct {
	Text string   `json:"text"`
	Kind PartKind `json:"kind"`
}

// HistoryExpression renders history as a running sum: the first term
// keeps its sign, later terms become " + n" or " - n" with unsigned
// magnitudes. Empty history yields an empty sequence.
func HistoryExpression(history []int) []ExpressionPart {
	if len(history) == 0 {
		return []ExpressionPart{}
	}
	parts := make([]ExpressionPart, 0, 2*len(history)-1)
	for i, v := range history {
		switch {
		case i == 0:
			kind := PartPositive
			if v < 0 {
				kind = PartNegative
			}
			parts = append(parts, ExpressionPart{Text: strconv.Itoa(v), Kind: kind})
		case v >= 0:
			parts = append(parts, ExpressionPart{Text: " + ", Kind: PartOperator})
			parts = append(parts, ExpressionPart{Text: strconv.Itoa(v), Kind: PartPositive})
		default:
			parts = append(parts, ExpressionPart{Text: " - ", Kind: PartOperator})
			parts = append(parts, ExpressionPart{Text: strconv.Itoa(-v), Kind: PartNegative})
		}
	}
	return parts
}

// SeriesPoint is one round's cumulative totals, keyed by player name
type SeriesPoint struct {
	Round  int            `json:"round"`
	Values map[string]int `json:"values"`
}

// BuildSeries produces the cumulative score series for charting: one
// point per round index from 0 (all zero) through the longest history.
// Players whose history is exhausted hold their final cumulative value
// flat. When no player has any history the series is empty; skipping
// charts for series of length <= 1 is the caller's policy.
func BuildSeries(players []model.Player) []SeriesPoint {
	maxLen := 0
	for _, p := range players {
		if len(p.History) > maxLen {
			maxLen = len(p.History)
		}
	}
	if maxLen == 0 {
		return []SeriesPoint{}
	}

	series := make([]SeriesPoint, 0, maxLen+1)
	for i := 0; i <= maxLen; i++ {
		point := SeriesPoint{Round: i, Values: make(map[string]int, len(players))}
		for _, p := range players {
			cumulative := 0
			for j := 0; j < i && j < len(p.History); j++ {
				cumulative += p.History[j]
			}
			point.Values[p.Name] = cumulative
		}
		series = append(series, point)
	}
	return series
}
