package share

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/cardtally-go/internal/model"
)

func fixedTime() time.Time {
	return time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
}

func sampleSession() *model.Session {
	session := model.NewSession("local-1", "Tết 2026", fixedTime())
	session.Players = []model.Player{
		{ID: "p1", Name: "Anna", Avatar: "🐉", History: []int{10, -5}, Total: 5},
		{ID: "p2", Name: "Bình", Avatar: "🧧", History: []int{-10}, Total: -10},
	}
	return session
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	session := sampleSession()

	token, err := Encode(session)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	decoded, err := Decode(token, fixedTime().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, session.Name, decoded.Name)
	require.Len(t, decoded.Players, 2)
	for i, p := range session.Players {
		assert.Equal(t, p.Name, decoded.Players[i].Name)
		assert.Equal(t, p.Avatar, decoded.Players[i].Avatar)
		assert.Equal(t, p.History, decoded.Players[i].History)
		assert.Equal(t, p.Total, decoded.Players[i].Total)
	}
}

func TestEncodeTokenIsURLSafe(t *testing.T) {
	token, err := Encode(sampleSession())
	require.NoError(t, err)

	// Unicode names and avatars must survive the URL-safe alphabet
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestDecodeProducesEndedReviewSession(t *testing.T) {
	token, _ := Encode(sampleSession())
	now := fixedTime().Add(24 * time.Hour)

	decoded, err := Decode(token, now)
	require.NoError(t, err)

	assert.True(t, decoded.Ended())
	assert.True(t, decoded.Imported())
	assert.True(t, strings.HasPrefix(string(decoded.ID), model.SharedIDPrefix))
	assert.True(t, decoded.CreatedAt.Equal(now))
	assert.True(t, decoded.EndedAt.Equal(now))
	assert.Equal(t, model.PlayerID("sp_0"), decoded.Players[0].ID)
	assert.Equal(t, model.PlayerID("sp_1"), decoded.Players[1].ID)
}

func TestDecodeFreshSessionIDPerDecode(t *testing.T) {
	token, _ := Encode(sampleSession())

	first, err := Decode(token, fixedTime())
	require.NoError(t, err)
	second, err := Decode(token, fixedTime())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestDecodeTokenWithPadding(t *testing.T) {
	data := `{"n":"Padded","p":[{"n":"A","a":"🐉","h":[1],"t":1}]}`
	token := base64.URLEncoding.EncodeToString([]byte(data))

	decoded, err := Decode(token, fixedTime())
	require.NoError(t, err)
	assert.Equal(t, "Padded", decoded.Name)
}

func TestDecodeFailsClosed(t *testing.T) {
	bad := []string{
		"",
		"!!!not-base64!!!",
		base64.RawURLEncoding.EncodeToString([]byte("not json")),
		base64.RawURLEncoding.EncodeToString([]byte(`{"n":"missing players"}`)),
		base64.RawURLEncoding.EncodeToString([]byte(`[1,2,3]`)),
	}
	for _, token := range bad {
		_, err := Decode(token, fixedTime())
		assert.ErrorIs(t, err, model.ErrInvalidToken, "token %q", token)
	}
}

func TestDecodeNilHistoryNormalized(t *testing.T) {
	data := `{"n":"X","p":[{"n":"A","a":"🐉","t":0}]}`
	token := base64.RawURLEncoding.EncodeToString([]byte(data))

	decoded, err := Decode(token, fixedTime())
	require.NoError(t, err)
	assert.NotNil(t, decoded.Players[0].History)
	assert.Empty(t, decoded.Players[0].History)
}

func TestURL(t *testing.T) {
	link := URL("https://tally.example.com/app", "abc123")
	assert.Equal(t, "https://tally.example.com/app?game=abc123", link)
}
