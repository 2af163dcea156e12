package storage

import (
	"context"

	"github.com/mcoot/cardtally-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Sessions form an ordered collection: ListSessions returns newest-first,
// with sessions saved for the first time taking the front. Implementations
// must not hand out aliased snapshots; a session obtained from Get/List is
// safe to mutate without affecting the stored copy.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]*model.Session, error)
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)

	// Boolean preference flags (sound, music, ...). Missing keys read
	// as false with no error.
	GetPreference(ctx context.Context, key string) (bool, error)
	SetPreference(ctx context.Context, key string, value bool) error

	// Application selection state, stored apart from the collection
	GetAppState(ctx context.Context) (model.AppState, error)
	SaveAppState(ctx context.Context, state model.AppState) error
}
