package request

// CreateSessionRequest is the request body for creating a session.
// An empty name gets a generated placeholder.
type CreateSessionRequest struct {
	Name string `json:"name"`
}

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// ChangeAvatarRequest is the request body for reassigning an avatar
type ChangeAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// ApplyRoundRequest carries one round of score entry. Scores map player
// ids to the raw text typed for that player; entries are validated and
// parsed server-side so a stray character rejects the whole round.
type ApplyRoundRequest struct {
	Scores map[string]string `json:"scores"`
}

// ImportRequest is the request body for importing a shared session
type ImportRequest struct {
	Token string `json:"token"`
}

// SetPreferenceRequest is the request body for storing a preference flag
type SetPreferenceRequest struct {
	Enabled bool `json:"enabled"`
}
