package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Entries are stored as JSON values with a set index over their ids.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, entryKey(entry.ID), data, 0)
	pipe.SAdd(ctx, entryIndexKey(), string(entry.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetEntry(ctx context.Context, id model.EntryID) (*model.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, entryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrEntryNotFound
		}
		return nil, err
	}

	var entry model.LeaderboardEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Storage) ListEntries(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	ids, err := s.client.SMembers(ctx, entryIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return []*model.LeaderboardEntry{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = entryKey(model.EntryID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.LeaderboardEntry, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index may be ahead of a deleted value
		}
		var entry model.LeaderboardEntry
		if err := json.Unmarshal([]byte(val.(string)), &entry); err != nil {
			continue // Skip invalid data
		}
		entries = append(entries, &entry)
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
	entries, err := s.ListEntries(ctx)
	if err != nil {
		return err
	}

	byID := make(map[model.EntryID]*model.LeaderboardEntry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}

	// One pipeline for the whole batch
	pipe := s.client.Pipeline()
	for _, update := range updates {
		entry, ok := byID[update.ID]
		if !ok {
			continue
		}
		entry.Rank = update.Rank
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		pipe.Set(ctx, entryKey(entry.ID), data, 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) CountEntries(ctx context.Context) (int, error) {
	count, err := s.client.SCard(ctx, entryIndexKey()).Result()
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *Storage) ReadyState(ctx context.Context) int {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return storage.ReadyStateDisconnected
	}
	return storage.ReadyStateConnected
}
