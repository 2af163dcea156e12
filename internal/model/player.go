package model

// PlayerID uniquely identifies a player within the session collection
type PlayerID string

// Player represents one participant in a session.
// Invariant: Total always equals the sum of History.
type Player struct {
	ID      PlayerID
	Name    string // immutable after creation
	Avatar  string
	History []int // one entry per round with a nonzero delta
	Total   int
}

// NewPlayer creates a player with empty history
func NewPlayer(id PlayerID, name, avatar string) Player {
	return Player{
		ID:      id,
		Name:    name,
		Avatar:  avatar,
		History: []int{},
		Total:   0,
	}
}

// Clone returns a deep copy of the player
func (p Player) Clone() Player {
	out := p
	out.History = make([]int, len(p.History))
	copy(out.History, p.History)
	return out
}

// Avatars is the fixed set players pick from. Avatars need not be
// unique among players; assignment merely prefers unused ones.
var Avatars = []string{
	"🐉", "🐅", "🐇", "🐍", "🐴", "🐏", "🐵", "🐓", "🐕", "🐖", "🐀", "🐂",
	"🎋", "🧧", "🏮", "🎆", "🎇", "🎍", "🍊", "🪷",
}

// ValidAvatar reports whether s is a member of the fixed avatar set
func ValidAvatar(s string) bool {
	for _, a := range Avatars {
		if a == s {
			return true
		}
	}
	return false
}
