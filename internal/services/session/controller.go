package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mcoot/cardtally-go/internal/dependencies/clock"
	"github.com/mcoot/cardtally-go/internal/dependencies/random"
	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/services/share"
	"github.com/mcoot/cardtally-go/internal/storage"
)

// MaxPlayerNameLength caps player names at the input boundary
const MaxPlayerNameLength = 20

// Controller manages the session collection lifecycle and the
// application-level selection state
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create makes a new open session at the front of the collection and
// selects it for score entry. An empty name gets a generated
// "Ván <n>" placeholder based on the current collection size.
func (c *Controller) Create(ctx context.Context, name string) (*model.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		existing, err := c.storage.ListSessions(ctx)
		if err != nil {
			return nil, err
		}
		name = fmt.Sprintf("Ván %d", len(existing)+1)
	}

	session := model.NewSession(model.SessionID(uuid.NewString()), name, c.clock.Now())
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	if err := c.selectSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session created", slog.String("session_id", string(session.ID)), slog.String("name", name))
	return session, nil
}

// Get retrieves a session by id
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// List returns the collection, newest first
func (c *Controller) List(ctx context.Context) ([]*model.Session, error) {
	return c.storage.ListSessions(ctx)
}

// End closes an open session. Ending is one-way and guarded: ending an
// already-ended session is rejected so EndedAt is never overwritten.
func (c *Controller) End(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Ended() {
		return nil, model.ErrSessionEnded
	}

	updated := session.Clone()
	now := c.clock.Now()
	updated.EndedAt = &now

	if err := c.storage.SaveSession(ctx, updated); err != nil {
		return nil, err
	}

	// Move an active selection into review
	state, err := c.storage.GetAppState(ctx)
	if err == nil && state.SessionID == id {
		_ = c.storage.SaveAppState(ctx, state.EndActive())
	}

	c.logger.Info("session ended", slog.String("session_id", string(id)))
	return updated, nil
}

// Delete removes a session permanently. No tombstoning; a selection
// pointing at the session is cleared.
func (c *Controller) Delete(ctx context.Context, id model.SessionID) error {
	if err := c.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	state, err := c.storage.GetAppState(ctx)
	if err == nil {
		_ = c.storage.SaveAppState(ctx, state.ClearIf(id))
	}

	c.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// AddPlayer appends a new player to an open session. The name is
// trimmed and capped; empty or case-insensitively duplicate names are
// rejected. The avatar is picked at random from the unused portion of
// the fixed set, falling back to the full set when every avatar is
// already taken.
func (c *Controller) AddPlayer(ctx context.Context, sessionID model.SessionID, name string) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Ended() {
		return nil, model.ErrSessionEnded
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}
	if runes := []rune(name); len(runes) > MaxPlayerNameLength {
		name = string(runes[:MaxPlayerNameLength])
	}
	if session.PlayerNamed(name) != nil {
		return nil, model.ErrDuplicatePlayerName
	}

	updated := session.Clone()
	player := model.NewPlayer(model.PlayerID(uuid.NewString()), name, c.pickAvatar(updated))
	updated.Players = append(updated.Players, player)

	if err := c.storage.SaveSession(ctx, updated); err != nil {
		return nil, err
	}

	c.logger.Info("player added",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(player.ID)),
		slog.String("name", name),
	)
	return updated, nil
}

// pickAvatar chooses an avatar uniformly from those not in use,
// permitting collisions only once the whole set is taken
func (c *Controller) pickAvatar(session *model.Session) string {
	used := make(map[string]bool, len(session.Players))
	for _, a := range session.UsedAvatars() {
		used[a] = true
	}

	available := make([]string, 0, len(model.Avatars))
	for _, a := range model.Avatars {
		if !used[a] {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		available = model.Avatars
	}
	return c.random.Pick(available)
}

// RemovePlayer removes a player and their history from a session. Not
// gated on session state; restricting removal to active sessions is the
// UI's concern.
func (c *Controller) RemovePlayer(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Player(playerID) == nil {
		return nil, model.ErrPlayerNotFound
	}

	updated := session.Clone()
	for i := range updated.Players {
		if updated.Players[i].ID == playerID {
			updated.Players = append(updated.Players[:i], updated.Players[i+1:]...)
			break
		}
	}

	if err := c.storage.SaveSession(ctx, updated); err != nil {
		return nil, err
	}

	c.logger.Info("player removed",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(playerID)),
	)
	return updated, nil
}

// ChangeAvatar reassigns a player's avatar. This is the one mutation
// permitted on ended sessions (cosmetic correction after the fact).
func (c *Controller) ChangeAvatar(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, avatar string) (*model.Session, error) {
	if !model.ValidAvatar(avatar) {
		return nil, model.ErrInvalidAvatar
	}

	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Player(playerID) == nil {
		return nil, model.ErrPlayerNotFound
	}

	updated := session.Clone()
	updated.Player(playerID).Avatar = avatar

	if err := c.storage.SaveSession(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Import decodes a share token, stores the resulting ended session at
// the front of the collection and selects it for review. A bad token
// surfaces model.ErrInvalidToken; callers treat that as "ignore and
// continue".
func (c *Controller) Import(ctx context.Context, token string) (*model.Session, error) {
	session, err := share.Decode(token, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	if err := c.selectSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session imported",
		slog.String("session_id", string(session.ID)),
		slog.Int("players", len(session.Players)),
	)
	return session, nil
}

// Open selects a session: open sessions for score entry, ended ones
// for review
func (c *Controller) Open(ctx context.Context, id model.SessionID) (model.AppState, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return model.AppState{}, err
	}
	if err := c.selectSession(ctx, session); err != nil {
		return model.AppState{}, err
	}
	return c.storage.GetAppState(ctx)
}

// GoHome clears the selection
func (c *Controller) GoHome(ctx context.Context) error {
	state, err := c.storage.GetAppState(ctx)
	if err != nil {
		return err
	}
	return c.storage.SaveAppState(ctx, state.GoHome())
}

// State returns the current selection
func (c *Controller) State(ctx context.Context) (model.AppState, error) {
	return c.storage.GetAppState(ctx)
}

func (c *Controller) selectSession(ctx context.Context, session *model.Session) error {
	state, err := c.storage.GetAppState(ctx)
	if err != nil {
		return err
	}
	return c.storage.SaveAppState(ctx, state.OpenSession(session))
}

// Interface for dependency injection
type ControllerInterface interface {
	Create(ctx context.Context, name string) (*model.Session, error)
	Get(ctx context.Context, id model.SessionID) (*model.Session, error)
	List(ctx context.Context) ([]*model.Session, error)
	End(ctx context.Context, id model.SessionID) (*model.Session, error)
	Delete(ctx context.Context, id model.SessionID) error
	AddPlayer(ctx context.Context, sessionID model.SessionID, name string) (*model.Session, error)
	RemovePlayer(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Session, error)
	ChangeAvatar(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, avatar string) (*model.Session, error)
	Import(ctx context.Context, token string) (*model.Session, error)
	Open(ctx context.Context, id model.SessionID) (model.AppState, error)
	GoHome(ctx context.Context) error
	State(ctx context.Context) (model.AppState, error)
}

var _ ControllerInterface = (*Controller)(nil)
