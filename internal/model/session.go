package model

import (
	"strings"
	"time"
)

// SessionID uniquely identifies a session. Sessions reconstructed from
// share tokens carry the "shared_" prefix to keep them distinguishable
// from locally-created ones.
type SessionID string

// SharedIDPrefix namespaces ids of sessions imported from share tokens
const SharedIDPrefix = "shared_"

// Session represents one complete game instance with its own players
// and round history
type Session struct {
	ID        SessionID
	Name      string
	CreatedAt time.Time
	EndedAt   *time.Time // nil while the session is open
	Players   []Player   // insertion order, the canonical entry order
}

// NewSession creates an open session with no players
func NewSession(id SessionID, name string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		Players:   []Player{},
	}
}

// Ended reports whether the session has been closed
func (s *Session) Ended() bool {
	return s.EndedAt != nil
}

// Imported reports whether the session was reconstructed from a share token
func (s *Session) Imported() bool {
	return strings.HasPrefix(string(s.ID), SharedIDPrefix)
}

// Player returns the player with the given id, or nil if not present
func (s *Session) Player(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// PlayerNamed returns the player whose name matches case-insensitively,
// or nil if not present
func (s *Session) PlayerNamed(name string) *Player {
	for i := range s.Players {
		if strings.EqualFold(s.Players[i].Name, name) {
			return &s.Players[i]
		}
	}
	return nil
}

// UsedAvatars returns the avatars currently assigned in this session
func (s *Session) UsedAvatars() []string {
	used := make([]string, 0, len(s.Players))
	for _, p := range s.Players {
		used = append(used, p.Avatar)
	}
	return used
}

// Clone returns a deep copy. Mutations go clone -> modify -> save so a
// held snapshot never aliases the stored one.
func (s *Session) Clone() *Session {
	out := *s
	if s.EndedAt != nil {
		ended := *s.EndedAt
		out.EndedAt = &ended
	}
	out.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	return &out
}
