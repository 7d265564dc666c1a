// Package apierr maps domain errors onto HTTP error responses.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tealeaves/wordstats/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
	CodeGameInProgress   = "GAME_IN_PROGRESS"
	CodeAlreadyPlayed    = "ALREADY_PLAYED"
	CodeGuessLimit       = "GUESS_LIMIT_EXCEEDED"
	CodeRecordExists     = "RECORD_EXISTS"
	CodeInvalidGuesses   = "INVALID_GUESSES"
	CodeStoreUnreachable = "STORE_UNREACHABLE"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "Game is already in progress"}}
	case errors.Is(err, model.ErrGameAlreadyPlayed):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyPlayed, "Player already played this game"}}
	case errors.Is(err, model.ErrGuessLimit):
		return &httpError{http.StatusBadRequest, APIError{CodeGuessLimit, "Request exceeded allowed guess limit"}}
	case errors.Is(err, model.ErrRecordExists):
		return &httpError{http.StatusConflict, APIError{CodeRecordExists, "Game record already exists"}}
	case errors.Is(err, model.ErrInvalidGuesses):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGuesses, "Invalid number of guesses"}}
	case errors.Is(err, model.ErrShardUnreachable), errors.Is(err, model.ErrCacheUnreachable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStoreUnreachable, "Backing store unreachable"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}
