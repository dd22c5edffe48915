package storage

import (
	"context"

	"github.com/mfield/memorymatch/internal/model"
)

// Connectivity codes reported by ReadyState
const (
	ReadyStateDisconnected = 0
	ReadyStateConnected    = 1
)

// Storage defines the interface for leaderboard persistence
type Storage interface {
	// SaveEntry persists a new entry
	SaveEntry(ctx context.Context, entry *model.LeaderboardEntry) error

	// GetEntry retrieves an entry by id
	GetEntry(ctx context.Context, id model.EntryID) (*model.LeaderboardEntry, error)

	// ListEntries returns the full entry set in unspecified order
	ListEntries(ctx context.Context) ([]*model.LeaderboardEntry, error)

	// ListEntriesByRank returns a page of entries ordered by rank
	// ascending, id ascending
	ListEntriesByRank(ctx context.Context, limit, offset int) ([]*model.LeaderboardEntry, error)

	// UpdateRanks writes recomputed ranks back in one batch
	UpdateRanks(ctx context.Context, updates []model.RankUpdate) error

	// CountEntries returns the total entry count
	CountEntries(ctx context.Context) (int, error)

	// ReadyState reports backend connectivity (1 connected, 0 disconnected)
	ReadyState(ctx context.Context) int

	// Close releases backend resources
	Close() error
}
