package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/services/stats"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case SessionList:
		o.printSessionList(v)
	case Stats:
		o.printStats(v)
	case Share:
		o.printShare(v)
	case State:
		o.printState(v)
	case Preference:
		o.printPreference(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player view type
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	History []int  `json:"history"`
	Total   int    `json:"total"`
}

// Session view type
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Imported  bool       `json:"imported"`
	Players   []Player   `json:"players"`
}

// SessionList view type
type SessionList struct {
	Sessions []Session `json:"sessions"`
}

// PlayerStats is one player's streak and history breakdown
type PlayerStats struct {
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Total      int    `json:"total"`
	Expression string `json:"expression"`
	MaxWin     int    `json:"max_win_streak"`
	MaxLose    int    `json:"max_lose_streak"`
}

// Stats view type
type Stats struct {
	Session string              `json:"session"`
	Players []PlayerStats       `json:"players"`
	Series  []stats.SeriesPoint `json:"series"`
}

// Share view type
type Share struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// State view type
type State struct {
	View      string `json:"view"`
	SessionID string `json:"session_id,omitempty"`
	Session   string `json:"session,omitempty"`
}

// Preference view type
type Preference struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}

// sessionView converts a model.Session for display
func sessionView(s *model.Session) Session {
	players := make([]Player, 0, len(s.Players))
	for _, p := range s.Players {
		history := p.History
		if history == nil {
			history = []int{}
		}
		players = append(players, Player{
			ID:      string(p.ID),
			Name:    p.Name,
			Avatar:  p.Avatar,
			History: history,
			Total:   p.Total,
		})
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

// statsView builds the stats breakdown for a session
func statsView(s *model.Session) Stats {
	ranked := stats.SortByTotalDescending(s.Players)
	players := make([]PlayerStats, 0, len(ranked))
	for _, p := range ranked {
		parts := stats.HistoryExpression(p.History)
		texts := make([]string, 0, len(parts))
		for _, part := range parts {
			texts = append(texts, part.Text)
		}
		players = append(players, PlayerStats{
			Name:       p.Name,
			Avatar:     p.Avatar,
			Total:      p.Total,
			Expression: strings.Join(texts, ""),
			MaxWin:     stats.MaxWinStreak(p.History),
			MaxLose:    stats.MaxLoseStreak(p.History),
		})
	}
	return Stats{
		Session: s.Name,
		Players: players,
		Series:  stats.BuildSeries(s.Players),
	}
}

func (o *Output) printSession(s Session) {
	status := "open"
	if s.EndedAt != nil {
		status = "ended " + s.EndedAt.Format("2006-01-02 15:04")
	}
	if s.Imported {
		status += " (imported)"
	}
	fmt.Printf("Session: %s (%s)\n", s.Name, s.ID)
	fmt.Printf("Created: %s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Players (%d):\n", len(s.Players))
	for _, p := range s.Players {
		fmt.Printf("  %s %s: %s (%d rounds)\n", p.Avatar, p.Name, stats.FormatAmount(p.Total), len(p.History))
	}
}

func (o *Output) printSessionList(l SessionList) {
	if len(l.Sessions) == 0 {
		fmt.Println("No sessions")
		return
	}
	for _, s := range l.Sessions {
		status := "open"
		if s.EndedAt != nil {
			status = "ended"
		}
		fmt.Printf("%s  %-20s %s  %d players  [%s]\n",
			s.ID, s.Name, s.CreatedAt.Format("2006-01-02"), len(s.Players), status)
	}
}

func (o *Output) printStats(st Stats) {
	fmt.Printf("Stats: %s\n", st.Session)
	for _, p := range st.Players {
		fmt.Printf("  %s %s: %s\n", p.Avatar, p.Name, stats.FormatAmount(p.Total))
		if p.Expression != "" {
			fmt.Printf("    history: %s\n", p.Expression)
		}
		fmt.Printf("    best win streak: %d, worst losing streak: %d\n", p.MaxWin, p.MaxLose)
	}
	if len(st.Series) > 0 {
		fmt.Println("Running totals:")
		for _, point := range st.Series {
			entries := make([]string, 0, len(point.Values))
			for _, p := range st.Players {
				if v, ok := point.Values[p.Name]; ok {
					entries = append(entries, fmt.Sprintf("%s=%s", p.Name, stats.FormatAmount(v)))
				}
			}
			fmt.Printf("  round %d: %s\n", point.Round, strings.Join(entries, "  "))
		}
	}
}

func (o *Output) printShare(s Share) {
	fmt.Printf("Token: %s\n", s.Token)
	fmt.Printf("Link: %s\n", s.URL)
}

func (o *Output) printState(s State) {
	fmt.Printf("View: %s\n", s.View)
	if s.Session != "" {
		fmt.Printf("Session: %s (%s)\n", s.Session, s.SessionID)
	}
}

func (o *Output) printPreference(p Preference) {
	state := "off"
	if p.Enabled {
		state = "on"
	}
	fmt.Printf("%s: %s\n", p.Key, state)
}
