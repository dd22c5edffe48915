package model

import "time"

// EntryID uniquely identifies a persisted leaderboard entry
type EntryID string

// MaxNameLength is the longest accepted player name after trimming
const MaxNameLength = 40

// DefaultPlayerName is used when a finished session carries no name
const DefaultPlayerName = "Player"

// LeaderboardRecord is one finished game result as submitted by a client.
// Immutable once created.
type LeaderboardRecord struct {
	Name       string     `json:"name"`
	Score      int        `json:"score"`
	Time       int        `json:"time"` // completion time in seconds
	Moves      int        `json:"moves"`
	Accuracy   float64    `json:"accuracy"`
	Difficulty Difficulty `json:"difficulty"`
	Theme      ThemeName  `json:"theme"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// LeaderboardEntry is a server-persisted record with its canonical rank.
// Ranks over the full entry set form a contiguous sequence 1..count.
type LeaderboardEntry struct {
	ID           EntryID
	Name         string
	Score        int
	FinishedTime int // seconds
	Rank         int
	CreatedAt    time.Time
}

// RankUpdate assigns a recomputed rank to one entry
type RankUpdate struct {
	ID   EntryID
	Rank int
}

// Standing is a single player's best entry in the canonical ranking
type Standing struct {
	Name         string
	Rank         int
	Score        int
	FinishedTime int
}

// LeaderboardStats summarizes the full entry set
type LeaderboardStats struct {
	TotalEntries int
	TotalPlayers int // distinct names, compared case-insensitively
}

// LeaderboardRow is a display-level aggregate: one row per player name,
// carrying that player's best score and best time across all records.
type LeaderboardRow struct {
	Name      string `json:"name"`
	BestScore int    `json:"bestScore"`
	BestTime  int    `json:"bestTime"`
}
