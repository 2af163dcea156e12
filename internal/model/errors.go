package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionEnded    = errors.New("session has ended")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrEmptyPlayerName     = errors.New("player name is empty")
	ErrDuplicatePlayerName = errors.New("player name already in use")
	ErrInvalidAvatar       = errors.New("avatar is not in the avatar set")

	// Share errors
	ErrInvalidToken = errors.New("share token is not valid")
)
