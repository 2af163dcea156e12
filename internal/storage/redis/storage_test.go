package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cardtally-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newSession(id model.SessionID, name string, createdAt time.Time) *model.Session {
	return model.NewSession(id, name, createdAt)
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("session-1", "Ván 1", time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC))
	session.Players = append(session.Players, model.NewPlayer("p1", "Anna", "🐉"))
	session.Players[0].History = []int{10, -5}
	session.Players[0].Total = 5

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.Name, retrieved.Name)
	s.Require().Len(retrieved.Players, 1)
	s.Equal("Anna", retrieved.Players[0].Name)
	s.Equal("🐉", retrieved.Players[0].Avatar)
	s.Equal([]int{10, -5}, retrieved.Players[0].History)
	s.Equal(5, retrieved.Players[0].Total)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestEndedAtRoundTrips() {
	session := s.newSession("session-1", "Ván 1", time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC))
	ended := time.Date(2026, 2, 17, 13, 30, 0, 0, time.UTC)
	session.EndedAt = &ended

	_ = s.storage.SaveSession(s.ctx, session)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Require().NotNil(retrieved.EndedAt)
	s.True(retrieved.EndedAt.Equal(ended))
}

func (s *StorageSuite) TestDeleteSession() {
	session := s.newSession("session-1", "Ván 1", time.Now())
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestListSessionsNewestFirst() {
	base := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1", "Ván 1", base))
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-2", "Ván 2", base.Add(time.Minute)))
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-3", "Ván 3", base.Add(2*time.Minute)))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal(model.SessionID("session-3"), sessions[0].ID)
	s.Equal(model.SessionID("session-2"), sessions[1].ID)
	s.Equal(model.SessionID("session-1"), sessions[2].ID)
}

func (s *StorageSuite) TestResaveKeepsPosition() {
	base := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1", "Ván 1", base))
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-2", "Ván 2", base.Add(time.Minute)))

	// Resaving the older session must not move it to the front
	updated := s.newSession("session-1", "Ván 1", base)
	updated.Players = append(updated.Players, model.NewPlayer("p1", "Anna", "🐉"))
	_ = s.storage.SaveSession(s.ctx, updated)

	sessions, _ := s.storage.ListSessions(s.ctx)
	s.Require().Len(sessions, 2)
	s.Equal(model.SessionID("session-2"), sessions[0].ID)
	s.Equal(model.SessionID("session-1"), sessions[1].ID)
}

func (s *StorageSuite) TestSessionTTL() {
	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour
	s.storage.cfg = cfg

	session := s.newSession("session-1", "Ván 1", time.Now())
	_ = s.storage.SaveSession(s.ctx, session)

	ttl := s.mini.TTL(sessionKey("session-1"))
	s.True(ttl > 0, "session should carry the configured TTL")
}

func (s *StorageSuite) TestPreferences() {
	value, err := s.storage.GetPreference(s.ctx, "sound")
	s.Require().NoError(err)
	s.False(value)

	err = s.storage.SetPreference(s.ctx, "sound", true)
	s.Require().NoError(err)

	value, err = s.storage.GetPreference(s.ctx, "sound")
	s.Require().NoError(err)
	s.True(value)
}

func (s *StorageSuite) TestAppStateRoundTrip() {
	state, err := s.storage.GetAppState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ViewHome, state.View)

	err = s.storage.SaveAppState(s.ctx, model.AppState{View: model.ViewReviewing, SessionID: "session-1"})
	s.Require().NoError(err)

	state, err = s.storage.GetAppState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ViewReviewing, state.View)
	s.Equal(model.SessionID("session-1"), state.SessionID)
}
