package memory

import (
	"context"
	"sync"

	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions    map[model.SessionID]*model.Session
	order       []model.SessionID // newest first
	preferences map[string]bool
	appState    model.AppState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:    make(map[model.SessionID]*model.Session),
		preferences: make(map[string]bool),
		appState:    model.HomeState(),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		s.order = append([]model.SessionID{session.ID}, s.order...)
	}
	// Store a clone so the caller's snapshot never aliases ours
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Session, 0, len(s.order))
	for _, id := range s.order {
		if session, ok := s.sessions[id]; ok {
			result = append(result, session.Clone())
		}
	}
	return result, nil
}

func (s *Storage) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok, nil
}

// Preference operations

func (s *Storage) GetPreference(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preferences[key], nil
}

func (s *Storage) SetPreference(ctx context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[key] = value
	return nil
}

// App state operations

func (s *Storage) GetAppState(ctx context.Context) (model.AppState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appState, nil
}

func (s *Storage) SaveAppState(ctx context.Context, state model.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appState = state
	return nil
}
