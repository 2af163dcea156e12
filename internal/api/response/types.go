package response

import (
	"time"

	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/services/stats"
)

// Player represents a player in API responses
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	History []int  `json:"history"`
	Total   int    `json:"total"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	history := p.History
	if history == nil {
		history = []int{}
	}
	return Player{
		ID:      string(p.ID),
		Name:    p.Name,
		Avatar:  p.Avatar,
		History: history,
		Total:   p.Total,
	}
}

// Session represents a session in API responses
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Imported  bool       `json:"imported"`
	Players   []Player   `json:"players"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	players := make([]Player, 0, len(s.Players))
	for i := range s.Players {
		players = append(players, PlayerFromModel(&s.Players[i]))
	}
	return Session{
		ID:        string(s.ID),
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		EndedAt:   s.EndedAt,
		Imported:  s.Imported(),
		Players:   players,
	}
}

// SessionList is the response for listing sessions, newest first
type SessionList struct {
	Sessions []Session `json:"sessions"`
}

// SessionListFromModels converts sessions to a SessionList
func SessionListFromModels(sessions []*model.Session) SessionList {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionFromModel(s))
	}
	return SessionList{Sessions: out}
}

// RoundResult reports the session after a round was applied, and
// whether anything actually changed
type RoundResult struct {
	Session Session `json:"session"`
	Changed bool    `json:"changed"`
}

// SummaryPlayer is one ranked row of a session summary
type SummaryPlayer struct {
	Rank       int                    `json:"rank"`
	Player     Player                 `json:"player"`
	Expression []stats.ExpressionPart `json:"expression"`
	MaxWin     int                    `json:"max_win_streak"`
	MaxLose    int                    `json:"max_lose_streak"`
}

// Summary is the derived leaderboard view of a session
type Summary struct {
	Session Session         `json:"session"`
	Ranked  []SummaryPlayer `json:"ranked"`
	Text    string          `json:"text"`
}

// SummaryFromModel builds the full summary for a session
func SummaryFromModel(s *model.Session) Summary {
	ranked := stats.SortByTotalDescending(s.Players)
	rows := make([]SummaryPlayer, 0, len(ranked))
	for i := range ranked {
		rows = append(rows, SummaryPlayer{
			Rank:       i + 1,
			Player:     PlayerFromModel(&ranked[i]),
			Expression: stats.HistoryExpression(ranked[i].History),
			MaxWin:     stats.MaxWinStreak(ranked[i].History),
			MaxLose:    stats.MaxLoseStreak(ranked[i].History),
		})
	}
	return Summary{
		Session: SessionFromModel(s),
		Ranked:  rows,
		Text:    stats.FormatLeaderboard(s),
	}
}

// Series is the per-round running totals of a session
type Series struct {
	Points []stats.SeriesPoint `json:"points"`
}

// Export is the shareable leaderboard text of a session
type Export struct {
	Text string `json:"text"`
}

// Share carries a session's share token and a ready-made link
type Share struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// AppState reports the current view and selection
type AppState struct {
	View      string `json:"view"`
	SessionID string `json:"session_id,omitempty"`
}

// AppStateFromModel converts a model.AppState to a response AppState
func AppStateFromModel(s model.AppState) AppState {
	return AppState{
		View:      string(s.View),
		SessionID: string(s.SessionID),
	}
}

// Preference reports a stored preference flag
type Preference struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}
