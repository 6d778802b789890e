// Package server provides the HTTP REST API for the LinkedIn-to-CV service.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/linkedin-cv/internal/extraction"
)

// ErrSessionNotFound indicates the session id is unknown.
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrSessionBusy indicates an extraction already holds the session.
type ErrSessionBusy struct {
	ID string
}

func (e *ErrSessionBusy) Error() string {
	return fmt.Sprintf("session %s is busy with an extraction", e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error. The
// extraction package's typed errors map here too: an unreadable upload is the
// client's problem, a provider failure or a malformed model reply is not.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrSessionBusy:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	}

	switch {
	case extraction.IsUnreadableDocument(err):
		return http.StatusUnprocessableEntity
	case extraction.IsMalformedResponse(err):
		return http.StatusBadGateway
	case extraction.IsExternalService(err):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
