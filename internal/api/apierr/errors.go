package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mfield/memorymatch/internal/model"
)

// ErrorResponse is the flat error body returned by the API. TotalPlayers
// accompanies the standing 404 so the caller still learns the player count.
type ErrorResponse struct {
	Error        string `json:"error"`
	TotalPlayers *int   `json:"totalPlayers,omitempty"`
}

// internalErrorMessage is the only detail exposed for unexpected failures
const internalErrorMessage = "Internal server error."

// httpError combines an HTTP status code with a response message
type httpError struct {
	status  int
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	writeJSON(w, he.status, ErrorResponse{Error: he.message})
}

// WriteNotFoundWithPlayers writes the standing 404 body, which carries the
// distinct player count alongside the error message.
func WriteNotFoundWithPlayers(w http.ResponseWriter, message string, totalPlayers int) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error:        message,
		TotalPlayers: &totalPlayers,
	})
}

func writeJSON(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return &httpError{http.StatusBadRequest, ve.Message}
	}

	if errors.Is(err, model.ErrEntryNotFound) {
		return &httpError{http.StatusNotFound, "Entry not found."}
	}

	return &httpError{http.StatusInternalServerError, internalErrorMessage}
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewInternalError creates a generic 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, internalErrorMessage}
}
