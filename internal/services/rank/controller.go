package rank

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mfield/memorymatch/internal/dependencies/clock"
	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/storage"
)

// Listing limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 200
)

// Controller owns the canonical, globally ordered leaderboard and assigns
// stable integer ranks to every persisted entry.
type Controller struct {
	storage  storage.Storage
	clock    clock.Clock
	logger   *slog.Logger
	validate *validator.Validate
}

// NewController creates a new rank Controller
func NewController(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		storage:  storage,
		clock:    clock,
		logger:   logger,
		validate: validator.New(),
	}
}

// submission carries the validated fields of a leaderboard submit
type submission struct {
	Name         string `validate:"required,min=1,max=40"`
	Score        int    `validate:"min=0"`
	FinishedTime int    `validate:"min=0"`
}

// Submit validates and persists a new entry, then recomputes ranks for the
// entire entry set.
//
// The recompute is a read-all, sort, batch-write cycle that is not
// transactionally isolated from concurrent submits: two racing submissions
// each run the full cycle and the last writer's view sticks until the
// other submission's own recompute lands. Writes are low-frequency
// relative to reads, so the whole-set recompute is kept for its guarantee
// that ranks always form a contiguous 1..count sequence.
func (c *Controller) Submit(ctx context.Context, name string, score, finishedTime int) (*model.LeaderboardEntry, error) {
	name = strings.TrimSpace(name)

	sub := submission{Name: name, Score: score, FinishedTime: finishedTime}
	if err := c.validate.Struct(sub); err != nil {
		return nil, validationError(err)
	}

	entry := &model.LeaderboardEntry{
		ID:           model.EntryID(uuid.NewString()),
		Name:         name,
		Score:        score,
		FinishedTime: finishedTime,
		CreatedAt:    c.clock.Now(),
	}

	if err := c.storage.SaveEntry(ctx, entry); err != nil {
		c.logger.Error("failed to save entry",
			slog.String("entry_id", string(entry.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if err := c.recomputeRanks(ctx); err != nil {
		return nil, err
	}

	created, err := c.storage.GetEntry(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	c.logger.Info("entry submitted",
		slog.String("entry_id", string(created.ID)),
		slog.String("name", created.Name),
		slog.Int("score", created.Score),
		slog.Int("rank", created.Rank),
	)

	return created, nil
}

// validationError maps validator failures to the messages surfaced to
// API callers
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Field() {
			case "Name":
				return model.NewValidationError("name is required and must be 1-40 chars.")
			case "Score":
				return model.NewValidationError("score must be a non-negative integer.")
			case "FinishedTime":
				return model.NewValidationError("finishedTime (or time) must be a non-negative integer.")
			}
		}
	}
	return model.NewValidationError("invalid submission.")
}

// recomputeRanks rewrites rank = position + 1 for every entry under the
// canonical total order: score desc, time asc, createdAt asc, id asc.
// The id tiebreak makes the order fully deterministic.
func (c *Controller) recomputeRanks(ctx context.Context) error {
	entries, err := c.storage.ListEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.FinishedTime != b.FinishedTime {
			return a.FinishedTime < b.FinishedTime
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	updates := make([]model.RankUpdate, len(entries))
	for i, entry := range entries {
		updates[i] = model.RankUpdate{ID: entry.ID, Rank: i + 1}
	}

	return c.storage.UpdateRanks(ctx, updates)
}

// List returns a page of entries ordered by rank ascending. The limit is
// clamped to [1, 200]; the offset is clamped to >= 0.
func (c *Controller) List(ctx context.Context, limit, offset int) ([]*model.LeaderboardEntry, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return c.storage.ListEntriesByRank(ctx, limit, offset)
}

// StandingFor returns the best (lowest-rank) entry for a player by
// case-insensitive exact name match, plus the distinct player count. When
// the player has no entries it returns ErrNoScoresForPlayer and the count
// is still valid.
func (c *Controller) StandingFor(ctx context.Context, name string) (*model.Standing, int, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > model.MaxNameLength {
		return nil, 0, model.NewValidationError("Invalid player name.")
	}

	entries, err := c.storage.ListEntries(ctx)
	if err != nil {
		return nil, 0, err
	}

	totalPlayers := countDistinctPlayers(entries)

	var best *model.LeaderboardEntry
	for _, entry := range entries {
		if !strings.EqualFold(entry.Name, name) {
			continue
		}
		if best == nil || entry.Rank < best.Rank ||
			(entry.Rank == best.Rank && entry.ID < best.ID) {
			best = entry
		}
	}

	if best == nil {
		return nil, totalPlayers, model.ErrNoScoresForPlayer
	}

	return &model.Standing{
		Name:         best.Name,
		Rank:         best.Rank,
		Score:        best.Score,
		FinishedTime: best.FinishedTime,
	}, totalPlayers, nil
}

// Stats returns the total entry count and the distinct player count
func (c *Controller) Stats(ctx context.Context) (*model.LeaderboardStats, error) {
	entries, err := c.storage.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	return &model.LeaderboardStats{
		TotalEntries: len(entries),
		TotalPlayers: countDistinctPlayers(entries),
	}, nil
}

// ReadyState reports the storage connectivity code
func (c *Controller) ReadyState(ctx context.Context) int {
	return c.storage.ReadyState(ctx)
}

// countDistinctPlayers groups names case-insensitively
func countDistinctPlayers(entries []*model.LeaderboardEntry) int {
	players := make(map[string]bool, len(entries))
	for _, entry := range entries {
		players[strings.ToLower(entry.Name)] = true
	}
	return len(players)
}

// Interface for dependency injection
type ControllerInterface interface {
	Submit(ctx context.Context, name string, score, finishedTime int) (*model.LeaderboardEntry, error)
	List(ctx context.Context, limit, offset int) ([]*model.LeaderboardEntry, error)
	StandingFor(ctx context.Context, name string) (*model.Standing, int, error)
	Stats(ctx context.Context) (*model.LeaderboardStats, error)
	ReadyState(ctx context.Context) int
}

var _ ControllerInterface = (*Controller)(nil)
