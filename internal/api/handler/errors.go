package handler

import (
	"net/http"

	"github.com/mcoot/cardtally-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidScore        = apierr.CodeInvalidScore
	CodeSessionNotFound     = apierr.CodeSessionNotFound
	CodeSessionEnded        = apierr.CodeSessionEnded
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeEmptyPlayerName     = apierr.CodeEmptyPlayerName
	CodeDuplicatePlayerName = apierr.CodeDuplicatePlayerName
	CodeInvalidAvatar       = apierr.CodeInvalidAvatar
	CodeInvalidToken        = apierr.CodeInvalidToken
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInvalidScoreError creates an error for rejected score text
func NewInvalidScoreError(message string) error {
	return apierr.NewInvalidScoreError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
