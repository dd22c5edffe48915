package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) entry(id string, score, rank int) *model.LeaderboardEntry {
	return &model.LeaderboardEntry{
		ID:           model.EntryID(id),
		Name:         "Ada",
		Score:        score,
		FinishedTime: 30,
		Rank:         rank,
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetEntry() {
	entry := s.entry("entry-1", 900, 1)

	err := s.storage.SaveEntry(s.ctx, entry)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetEntry(s.ctx, "entry-1")
	s.Require().NoError(err)
	s.Equal(entry.ID, retrieved.ID)
	s.Equal(entry.Name, retrieved.Name)
	s.Equal(entry.Score, retrieved.Score)
	s.True(entry.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetEntryNotFound() {
	_, err := s.storage.GetEntry(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrEntryNotFound)
}

func (s *StorageSuite) TestListEntries() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-1", 900, 1)))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-2", 700, 2)))

	entries, err := s.storage.ListEntries(s.ctx)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *StorageSuite) TestListEntriesEmpty() {
	entries, err := s.storage.ListEntries(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *StorageSuite) TestListEntriesByRankOrdersAndPaginates() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-c", 100, 3)))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-a", 900, 1)))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-b", 500, 2)))

	entries, err := s.storage.ListEntriesByRank(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(entries, 3)
	s.Equal(model.EntryID("entry-a"), entries[0].ID)
	s.Equal(model.EntryID("entry-b"), entries[1].ID)
	s.Equal(model.EntryID("entry-c"), entries[2].ID)

	page, err := s.storage.ListEntriesByRank(s.ctx, 2, 1)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(model.EntryID("entry-b"), page[0].ID)
	s.Equal(model.EntryID("entry-c"), page[1].ID)
}

func (s *StorageSuite) TestUpdateRanks() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-1", 900, 0)))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-2", 700, 0)))

	err := s.storage.UpdateRanks(s.ctx, []model.RankUpdate{
		{ID: "entry-1", Rank: 1},
		{ID: "entry-2", Rank: 2},
	})
	s.Require().NoError(err)

	first, err := s.storage.GetEntry(s.ctx, "entry-1")
	s.Require().NoError(err)
	s.Equal(1, first.Rank)

	second, err := s.storage.GetEntry(s.ctx, "entry-2")
	s.Require().NoError(err)
	s.Equal(2, second.Rank)
}

func (s *StorageSuite) TestUpdateRanksIgnoresUnknownIDs() {
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-1", 900, 0)))

	err := s.storage.UpdateRanks(s.ctx, []model.RankUpdate{
		{ID: "entry-1", Rank: 1},
		{ID: "unknown", Rank: 2},
	})
	s.Require().NoError(err)

	first, err := s.storage.GetEntry(s.ctx, "entry-1")
	s.Require().NoError(err)
	s.Equal(1, first.Rank)
}

func (s *StorageSuite) TestCountEntries() {
	count, err := s.storage.CountEntries(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)

	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-1", 900, 1)))
	s.Require().NoError(s.storage.SaveEntry(s.ctx, s.entry("entry-2", 700, 2)))

	count, err = s.storage.CountEntries(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *StorageSuite) TestReadyState() {
	s.Equal(storage.ReadyStateConnected, s.storage.ReadyState(s.ctx))

	s.mini.Close()
	s.Equal(storage.ReadyStateDisconnected, s.storage.ReadyState(s.ctx))
}
