package response

import (
	"time"

	"github.com/mfield/memorymatch/internal/model"
)

// Entry represents a leaderboard entry in API responses. Time duplicates
// FinishedTime for callers using the older field name.
type Entry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Score        int       `json:"score"`
	FinishedTime int       `json:"finishedTime"`
	Time         int       `json:"time"`
	Rank         int       `json:"rank"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntryFromModel converts a model.LeaderboardEntry to a response Entry
func EntryFromModel(e *model.LeaderboardEntry) Entry {
	return Entry{
		ID:           string(e.ID),
		Name:         e.Name,
		Score:        e.Score,
		FinishedTime: e.FinishedTime,
		Time:         e.FinishedTime,
		Rank:         e.Rank,
		CreatedAt:    e.CreatedAt,
	}
}

// EntriesFromModel converts a slice of entries
func EntriesFromModel(entries []*model.LeaderboardEntry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = EntryFromModel(e)
	}
	return out
}

// Standing is a player's best rank plus the distinct player count
type Standing struct {
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	Score        int    `json:"score"`
	FinishedTime int    `json:"finishedTime"`
	TotalPlayers int    `json:"totalPlayers"`
}

// StandingFromModel converts a model.Standing plus the player count
func StandingFromModel(s *model.Standing, totalPlayers int) Standing {
	return Standing{
		Name:         s.Name,
		Rank:         s.Rank,
		Score:        s.Score,
		FinishedTime: s.FinishedTime,
		TotalPlayers: totalPlayers,
	}
}

// Stats summarizes the leaderboard
type Stats struct {
	TotalEntries int `json:"totalEntries"`
	TotalPlayers int `json:"totalPlayers"`
}

// StatsFromModel converts model.LeaderboardStats
func StatsFromModel(s *model.LeaderboardStats) Stats {
	return Stats{
		TotalEntries: s.TotalEntries,
		TotalPlayers: s.TotalPlayers,
	}
}

// DBStatus reports storage connectivity
type DBStatus struct {
	ReadyState int `json:"readyState"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
