package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cardtally-go/internal/model"
)

func fixedTime() time.Time {
	return time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
}

func player(name string, history ...int) model.Player {
	total := 0
	for _, v := range history {
		total += v
	}
	return model.Player{
		ID:      model.PlayerID("id-" + name),
		Name:    name,
		Avatar:  "🐉",
		History: history,
		Total:   total,
	}
}

func TestSortByTotalDescending(t *testing.T) {
	players := []model.Player{
		player("A", 5, 5),   // 10
		player("B", 10),     // 10
		player("C", -5),     // -5
		player("D", 20, 10), // 30
	}

	sorted := SortByTotalDescending(players)

	require.Len(t, sorted, 4)
	assert.Equal(t, "D", sorted[0].Name)
	// Ties preserve input order
	assert.Equal(t, "A", sorted[1].Name)
	assert.Equal(t, "B", sorted[2].Name)
	assert.Equal(t, "C", sorted[3].Name)

	// Input order untouched
	assert.Equal(t, "A", players[0].Name)
}

func TestSortByTotalDescendingEmpty(t *testing.T) {
	assert.Empty(t, SortByTotalDescending(nil))
}

func TestMaxWinStreak(t *testing.T) {
	assert.Equal(t, 3, MaxWinStreak([]int{10, 20, -5, 30, 40, 50}))
	assert.Equal(t, 0, MaxWinStreak([]int{-1, -2, -3}))
	assert.Equal(t, 0, MaxWinStreak(nil))
	// Zero entries break the streak
	assert.Equal(t, 1, MaxWinStreak([]int{5, 0, 5}))
}

func TestMaxLoseStreak(t *testing.T) {
	assert.Equal(t, 3, MaxLoseStreak([]int{10, -5, -5, -5, 10}))
	assert.Equal(t, 0, MaxLoseStreak([]int{1, 2, 3}))
	assert.Equal(t, 0, MaxLoseStreak(nil))
	assert.Equal(t, 1, MaxLoseStreak([]int{-5, 0, -5}))
}

func TestHistoryExpression(t *testing.T) {
	parts := HistoryExpression([]int{10, 20, -5})

	require.Len(t, parts, 5)
	assert.Equal(t, ExpressionPart{Text: "10", Kind: PartPositive}, parts[0])
	assert.Equal(t, ExpressionPart{Text: " + ", Kind: PartOperator}, parts[1])
	assert.Equal(t, ExpressionPart{Text: "20", Kind: PartPositive}, parts[2])
	assert.Equal(t, ExpressionPart{Text: " - ", Kind: PartOperator}, parts[3])
	assert.Equal(t, ExpressionPart{Text: "5", Kind: PartNegative}, parts[4])
}

func TestHistoryExpressionFirstTermKeepsSign(t *testing.T) {
	parts := HistoryExpression([]int{-5, 10})

	require.Len(t, parts, 3)
	assert.Equal(t, ExpressionPart{Text: "-5", Kind: PartNegative}, parts[0])
	assert.Equal(t, ExpressionPart{Text: " + ", Kind: PartOperator}, parts[1])
	assert.Equal(t, ExpressionPart{Text: "10", Kind: PartPositive}, parts[2])
}

func TestHistoryExpressionEmpty(t *testing.T) {
	assert.Empty(t, HistoryExpression(nil))
}

func TestBuildSeries(t *testing.T) {
	players := []model.Player{
		player("A", 10, -10),
		player("B", 5),
	}

	series := BuildSeries(players)

	require.Len(t, series, 3)
	assert.Equal(t, 0, series[0].Round)
	assert.Equal(t, map[string]int{"A": 0, "B": 0}, series[0].Values)
	assert.Equal(t, map[string]int{"A": 10, "B": 5}, series[1].Values)
	// B's history is exhausted: its value holds flat
	assert.Equal(t, map[string]int{"A": 0, "B": 5}, series[2].Values)
}

func TestBuildSeriesEmptyWhenNoHistory(t *testing.T) {
	assert.Empty(t, BuildSeries(nil))
	assert.Empty(t, BuildSeries([]model.Player{player("A"), player("B")}))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "+500", FormatAmount(500))
	assert.Equal(t, "+1.000", FormatAmount(1000))
	assert.Equal(t, "-50.000", FormatAmount(-50000))
	assert.Equal(t, "+1.234.567", FormatAmount(1234567))
}

func TestFormatLeaderboard(t *testing.T) {
	session := model.NewSession("s1", "Tết 2026", fixedTime())
	session.Players = []model.Player{
		{ID: "p1", Name: "Anna", Avatar: "🐉", History: []int{10}, Total: 10},
		{ID: "p2", Name: "Binh", Avatar: "🐅", History: []int{-10}, Total: -10},
	}

	text := FormatLeaderboard(session)

	expected := "🧧 Tết 2026\n" +
		"👑 🐉 Anna: +10\n" +
		"#2 🐅 Binh: -10"
	assert.Equal(t, expected, text)
}
