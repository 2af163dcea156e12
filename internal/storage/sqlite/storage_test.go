package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/cardtally-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	path := filepath.Join(s.T().TempDir(), "cardtally.db")
	store, err := New(path)
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := model.NewSession("session-1", "Ván 1", time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC))
	session.Players = append(session.Players, model.NewPlayer("p1", "Anna", "🧧"))
	session.Players[0].History = []int{10, -5, 20}
	session.Players[0].Total = 25

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal("Ván 1", retrieved.Name)
	s.Require().Len(retrieved.Players, 1)
	s.Equal([]int{10, -5, 20}, retrieved.Players[0].History)
	s.Equal(25, retrieved.Players[0].Total)
	s.Equal("🧧", retrieved.Players[0].Avatar)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := model.NewSession("session-1", "Ván 1", time.Now())
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestListSessionsNewestFirst() {
	base := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSession(s.ctx, model.NewSession("session-1", "Ván 1", base))
	_ = s.storage.SaveSession(s.ctx, model.NewSession("session-2", "Ván 2", base.Add(time.Minute)))
	_ = s.storage.SaveSession(s.ctx, model.NewSession("session-3", "Ván 3", base.Add(2*time.Minute)))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal(model.SessionID("session-3"), sessions[0].ID)
	s.Equal(model.SessionID("session-1"), sessions[2].ID)
}

func (s *StorageSuite) TestResaveKeepsPosition() {
	base := time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSession(s.ctx, model.NewSession("session-1", "Ván 1", base))
	_ = s.storage.SaveSession(s.ctx, model.NewSession("session-2", "Ván 2", base.Add(time.Minute)))

	updated := model.NewSession("session-1", "Ván 1", base)
	updated.Players = append(updated.Players, model.NewPlayer("p1", "Anna", "🐉"))
	_ = s.storage.SaveSession(s.ctx, updated)

	sessions, _ := s.storage.ListSessions(s.ctx)
	s.Require().Len(sessions, 2)
	s.Equal(model.SessionID("session-2"), sessions[0].ID)
	s.Require().Len(sessions[1].Players, 1)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, model.NewSession("session-1", "Ván 1", time.Now()))

	exists, err = s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestPreferences() {
	value, err := s.storage.GetPreference(s.ctx, "sound")
	s.Require().NoError(err)
	s.False(value)

	s.Require().NoError(s.storage.SetPreference(s.ctx, "sound", true))

	value, err = s.storage.GetPreference(s.ctx, "sound")
	s.Require().NoError(err)
	s.True(value)

	s.Require().NoError(s.storage.SetPreference(s.ctx, "sound", false))

	value, _ = s.storage.GetPreference(s.ctx, "sound")
	s.False(value)
}

func (s *StorageSuite) TestAppStateRoundTrip() {
	state, err := s.storage.GetAppState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ViewHome, state.View)

	s.Require().NoError(s.storage.SaveAppState(s.ctx, model.AppState{View: model.ViewActive, SessionID: "session-1"}))

	state, err = s.storage.GetAppState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ViewActive, state.View)
	s.Equal(model.SessionID("session-1"), state.SessionID)
}
