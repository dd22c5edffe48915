package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	entries map[model.EntryID]*model.LeaderboardEntry
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		entries: make(map[model.EntryID]*model.LeaderboardEntry),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.entries[entry.ID] = &clone
	return nil
}

func (s *Storage) GetEntry(ctx context.Context, id model.EntryID) (*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, model.ErrEntryNotFound
	}
	clone := *entry
	return &clone, nil
}

func (s *Storage) ListEntries(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*model.LeaderboardEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		clone := *entry
		entries = append(entries, &clone)
	}
	return entries, nil
}

func (s *Storage) ListEntriesByRank(ctx context.Context, limit, offset int) ([]*model.LeaderboardEntry, error) {
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rank != entries[j].Rank {
			return entries[i].Rank < entries[j].Rank
		}
		return entries[i].ID < entries[j].ID
	})

	if offset >= len(entries) {
		return []*model.LeaderboardEntry{}, nil
	}
	entries = entries[offset:]
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *Storage) UpdateRanks(ctx context.Context, updates []model.RankUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, update := range updates {
		if entry, ok := s.entries[update.ID]; ok {
			entry.Rank = update.Rank
		}
	}
	return nil
}

func (s *Storage) CountEntries(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

func (s *Storage) ReadyState(ctx context.Context) int {
	return storage.ReadyStateConnected
}

func (s *Storage) Close() error {
	return nil
}
