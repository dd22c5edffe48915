// Package sync reconciles the client's local leaderboard mirror with the
// remote rank aggregator. The protocol has two states: local-only until a
// remote call has succeeded, remote-confirmed after. Local data is
// authoritative only while the remote is unreachable; any successful
// remote read overwrites the mirror unconditionally.
package sync

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mfield/memorymatch/internal/model"
)

// State of the reconciliation protocol
type State string

const (
	StateLocalOnly       State = "local-only"
	StateRemoteConfirmed State = "remote-confirmed"
)

// Remote is the leaderboard API as seen by the reconciler
type Remote interface {
	FetchLeaderboard(ctx context.Context) ([]model.LeaderboardRecord, error)
	SubmitRecord(ctx context.Context, record model.LeaderboardRecord) error
}

// Mirror is the durable local record cache
type Mirror interface {
	Read() ([]model.LeaderboardRecord, error)
	Write(records []model.LeaderboardRecord) error
}

// Service is the client-side leaderboard reconciler. It is driven by the
// single-threaded game loop; remote failures degrade silently to the
// local mirror and are never surfaced to the player.
type Service struct {
	remote Remote
	mirror Mirror
	logger *slog.Logger
	state  State
}

// New creates a reconciler in the local-only state
func New(remote Remote, mirror Mirror, logger *slog.Logger) *Service {
	return &Service{
		remote: remote,
		mirror: mirror,
		logger: logger,
		state:  StateLocalOnly,
	}
}

// State returns the current protocol state
func (s *Service) State() State {
	return s.state
}

// Load returns the current record set: the remote list when reachable
// (overwriting the mirror), otherwise the mirror unchanged.
func (s *Service) Load(ctx context.Context) []model.LeaderboardRecord {
	local, _ := s.mirror.Read()

	remote, err := s.remote.FetchLeaderboard(ctx)
	if err != nil {
		s.logger.Debug("remote leaderboard unreachable, using local mirror",
			slog.String("error", err.Error()),
		)
		return local
	}

	s.overwriteMirror(remote)
	return remote
}

// Submit appends the record to the mirror immediately, then attempts the
// remote submit. On success the canonical list is re-fetched and replaces
// the mirror; on any failure the optimistic local append stands with no
// retry.
func (s *Service) Submit(ctx context.Context, record model.LeaderboardRecord) []model.LeaderboardRecord {
	local, _ := s.mirror.Read()
	local = append(local, record)
	if err := s.mirror.Write(local); err != nil {
		s.logger.Warn("failed to write local mirror", slog.String("error", err.Error()))
	}

	if err := s.remote.SubmitRecord(ctx, record); err != nil {
		s.logger.Debug("remote submit failed, keeping local record",
			slog.String("error", err.Error()),
		)
		return local
	}

	remote, err := s.remote.FetchLeaderboard(ctx)
	if err != nil {
		s.logger.Debug("remote refetch failed after submit",
			slog.String("error", err.Error()),
		)
		return local
	}

	s.overwriteMirror(remote)
	return remote
}

func (s *Service) overwriteMirror(records []model.LeaderboardRecord) {
	if err := s.mirror.Write(records); err != nil {
		s.logger.Warn("failed to overwrite local mirror", slog.String("error", err.Error()))
	}
	s.state = StateRemoteConfirmed
}

// Rows derives the display rows from a record set: one row per distinct
// player name with that player's best score and, independently, best
// time, sorted by score descending then time ascending. Recomputed from
// the full set on every call.
func Rows(records []model.LeaderboardRecord, limit int) []model.LeaderboardRow {
	byPlayer := make(map[string]*model.LeaderboardRow)
	var order []string

	for _, record := range records {
		row, ok := byPlayer[record.Name]
		if !ok {
			byPlayer[record.Name] = &model.LeaderboardRow{
				Name:      record.Name,
				BestScore: record.Score,
				BestTime:  record.Time,
			}
			order = append(order, record.Name)
			continue
		}
		if record.Score > row.BestScore {
			row.BestScore = record.Score
		}
		if record.Time < row.BestTime {
			row.BestTime = record.Time
		}
	}

	rows := make([]model.LeaderboardRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, *byPlayer[name])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BestScore != rows[j].BestScore {
			return rows[i].BestScore > rows[j].BestScore
		}
		return rows[i].BestTime < rows[j].BestTime
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}
