// Package share encodes finished sessions as compact URL-safe tokens
// and reconstructs review-only sessions from them.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/cardtally-go/internal/model"
)

// QueryParam is the query parameter carrying the token in share links
const QueryParam = "game"

// sharedSession is the wire projection: only what a recipient needs to
// review the result. Short keys keep the token compact.
type sharedSession struct {
	Name    string         `json:"n"`
	Players []sharedPlayer `json:"p"`
}

type sharedPlayer struct {
	Name    string `json:"n"`
	Avatar  string `json:"a"`
	History []int  `json:"h"`
	Total   int    `json:"t"`
}

// Encode serializes the session to a URL-safe token. Only session name
// and each player's name/avatar/history/total are retained; ids and
// timestamps are not part of the token.
func Encode(session *model.Session) (string, error) {
	compact := sharedSession{
		Name:    session.Name,
		Players: make([]sharedPlayer, len(session.Players)),
	}
	for i, p := range session.Players {
		history := p.History
		if history == nil {
			history = []int{}
		}
		compact.Players[i] = sharedPlayer{
			Name:    p.Name,
			Avatar:  p.Avatar,
			History: history,
			Total:   p.Total,
		}
	}

	data, err := json.Marshal(compact)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode reconstructs a session from a token. The result is always
// ended (review-only) with CreatedAt/EndedAt set to now, a fresh
// "shared_"-prefixed session id, and positional player ids (sp_0, sp_1,
// ...). Positional ids can repeat across separate imports; that is
// acceptable because imported sessions only ever see avatar changes.
// Fails closed with model.ErrInvalidToken on any malformed input.
func Decode(token string, now time.Time) (*model.Session, error) {
	// Tolerate padded tokens from other encoders
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	var compact sharedSession
	if err := json.Unmarshal(data, &compact); err != nil {
		return nil, model.ErrInvalidToken
	}
	if compact.Players == nil {
		return nil, model.ErrInvalidToken
	}

	ended := now
	session := &model.Session{
		ID:        model.SessionID(model.SharedIDPrefix + uuid.NewString()),
		Name:      compact.Name,
		CreatedAt: now,
		EndedAt:   &ended,
		Players:   make([]model.Player, len(compact.Players)),
	}
	for i, p := range compact.Players {
		history := p.History
		if history == nil {
			history = []int{}
		}
		session.Players[i] = model.Player{
			ID:      model.PlayerID(fmt.Sprintf("sp_%d", i)),
			Name:    p.Name,
			Avatar:  p.Avatar,
			History: history,
			Total:   p.Total,
		}
	}
	return session, nil
}

// URL builds a shareable link embedding the token as a query parameter
func URL(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?" + QueryParam + "=" + token
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	return u.String()
}
