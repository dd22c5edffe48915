package model

import "errors"

// Common errors used across the application
var (
	// Deck errors
	ErrUnknownDifficulty      = errors.New("unknown difficulty")
	ErrUnknownTheme           = errors.New("unknown theme")
	ErrInsufficientThemeItems = errors.New("not enough theme items for this difficulty")
	ErrDuplicateThemeItem     = errors.New("theme items must be distinct")

	// Session errors
	ErrSessionWon       = errors.New("session is already won")
	ErrSessionDiscarded = errors.New("session has been discarded")
	ErrBoardLocked      = errors.New("board is locked while a mismatch settles")
	ErrCardNotFound     = errors.New("card not found in deck")
	ErrCardMatched      = errors.New("card is already matched")
	ErrCardSelected     = errors.New("card is already selected")

	// Leaderboard errors
	ErrEntryNotFound     = errors.New("leaderboard entry not found")
	ErrNoScoresForPlayer = errors.New("no scores found for this player")
)

// ValidationError reports a malformed submission or query. Its message is
// surfaced verbatim to API callers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
