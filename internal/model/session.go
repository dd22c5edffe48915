package model

// SessionState represents the current phase of a game session
type SessionState string

const (
	SessionStateIdle        SessionState = "idle"         // No card selected
	SessionStateOneSelected SessionState = "one_selected" // First card of a pair is face up
	SessionStateEvaluating  SessionState = "evaluating"   // Mismatched pair waiting for the settle delay
	SessionStateWon         SessionState = "won"          // All pairs matched; terminal
)
