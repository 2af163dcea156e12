package score

import (
	"context"
	"log/slog"

	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/storage"
)

// Controller applies score mutations to stored sessions. It is the
// caller layer that rejects mutation of ended sessions; the pure engine
// functions do not re-check.
type Controller struct {
	storage storage.Storage
	logger  *slog.Logger
}

// NewController creates a new score Controller
func NewController(storage storage.Storage, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		logger:  logger,
	}
}

// ApplyRound applies one round of deltas to the session. The returned
// bool is false when every delta was zero or absent; the session is then
// returned unchanged and nothing is saved, and callers must treat the
// round as "nothing happened".
func (c *Controller) ApplyRound(ctx context.Context, sessionID model.SessionID, deltas map[model.PlayerID]int) (*model.Session, bool, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if session.Ended() {
		return nil, false, model.ErrSessionEnded
	}

	updated, changed := ApplyDeltas(session, deltas)
	if !changed {
		return session, false, nil
	}

	if err := c.storage.SaveSession(ctx, updated); err != nil {
		return nil, false, err
	}

	c.logger.Info("round applied",
		slog.String("session_id", string(sessionID)),
		slog.Int("players_scored", len(deltas)),
	)
	return updated, true, nil
}

// UndoLast removes the named player's most recent history entry. A
// player with empty history is a no-op: the session is returned
// unchanged with changed=false.
func (c *Controller) UndoLast(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Session, bool, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if session.Ended() {
		return nil, false, model.ErrSessionEnded
	}
	if session.Player(playerID) == nil {
		return nil, false, model.ErrPlayerNotFound
	}

	updated, removed, changed := UndoLastDelta(session, playerID)
	if !changed {
		return session, false, nil
	}

	if err := c.storage.SaveSession(ctx, updated); err != nil {
		return nil, false, err
	}

	c.logger.Info("entry undone",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(playerID)),
		slog.Int("removed", removed),
	)
	return updated, true, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	ApplyRound(ctx context.Context, sessionID model.SessionID, deltas map[model.PlayerID]int) (*model.Session, bool, error)
	UndoLast(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Session, bool, error)
}

var _ ControllerInterface = (*Controller)(nil)
