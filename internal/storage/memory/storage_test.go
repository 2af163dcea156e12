package memory

import (
	"context"
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
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(id model.SessionID, name string) *model.Session {
	return model.NewSession(id, name, time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC))
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("session-1", "Ván 1")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Name, retrieved.Name)
	s.Nil(retrieved.EndedAt)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1", "Ván 1"))

	err := s.storage.DeleteSession(s.ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}

func (s *StorageSuite) TestListSessionsNewestFirst() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1", "Ván 1"))
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-2", "Ván 2"))
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-3", "Ván 3"))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 3)
	s.Equal(model.SessionID("session-3"), sessions[0].ID)
	s.Equal(model.SessionID("session-2"), sessions[1].ID)
	s.Equal(model.SessionID("session-1"), sessions[2].ID)
}

func (s *StorageSuite) TestResaveKeepsPosition() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1", "Ván 1"))
	_ = s.storage.SaveSession(s.ctx, s.newSession("session-2", "Ván 2"))

	updated := s.newSession("session-1", "Ván 1 renamed")
	_ = s.storage.SaveSession(s.ctx, updated)

	sessions, _ := s.storage.ListSessions(s.ctx)
	s.Require().Len(sessions, 2)
	s.Equal(model.SessionID("session-2"), sessions[0].ID)
	s.Equal("Ván 1 renamed", sessions[1].Name)
}

func (s *StorageSuite) TestSnapshotsDoNotAlias() {
	session := s.newSession("session-1", "Ván 1")
	session.Players = append(session.Players, model.NewPlayer("p1", "Anna", "🐉"))
	_ = s.storage.SaveSession(s.ctx, session)

	// Mutating the saved-in snapshot must not affect the stored copy
	session.Players[0].History = append(session.Players[0].History, 10)
	session.Players[0].Total = 10

	retrieved, _ := s.storage.GetSession(s.ctx, "session-1")
	s.Empty(retrieved.Players[0].History)
	s.Zero(retrieved.Players[0].Total)

	// And mutating a retrieved snapshot must not affect later reads
	retrieved.Players[0].History = append(retrieved.Players[0].History, 5)
	again, _ := s.storage.GetSession(s.ctx, "session-1")
	s.Empty(again.Players[0].History)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, s.newSession("session-1", "Ván 1"))

	exists, err = s.storage.SessionExists(s.ctx, "session-1")
	s.Require().NoError(err)
	s.True(exists)
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

func (s *StorageSuite) TestAppStateDefaultsToHome() {
	state, err := s.storage.GetAppState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ViewHome, state.View)
}

func (s *StorageSuite) TestSaveAndGetAppState() {
	err := s.storage.SaveAppState(s.ctx, model.AppState{View: model.ViewActive, SessionID: "session-1"})
	s.Require().NoError(err)

	state, err := s.storage.GetAppState(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ViewActive, state.View)
	s.Equal(model.SessionID("session-1"), state.SessionID)
}
