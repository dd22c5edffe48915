package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens the database, applies pragmas, and runs embedded migrations
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Rank recomputes are whole-table writes; keep a single writer
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite storage ready", slog.String("path", cfg.Path))
	return &Storage{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leaderboard_entries (id, name, score, finished_time, rank, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(entry.ID), entry.Name, entry.Score, entry.FinishedTime, entry.Rank, entry.CreatedAt,
	)
	return err
}

func (s *Storage) GetEntry(ctx context.Context, id model.EntryID) (*model.LeaderboardEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, score, finished_time, rank, created_at
		 FROM leaderboard_entries WHERE id = ?`,
		string(id),
	)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *Storage) ListEntries(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, score, finished_time, rank, created_at
		 FROM leaderboard_entries`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

func (s *Storage) ListEntriesByRank(ctx context.Context, limit, offset int) ([]*model.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, score, finished_time, rank, created_at
		 FROM leaderboard_entries
		 ORDER BY rank ASC, id ASC
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return collectEntries(rows)
}

func (s *Storage) UpdateRanks(ctx context.Context, updates []model.RankUpdate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE leaderboard_entries SET rank = ? WHERE id = ?`,
	)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, update := range updates {
		if _, err := stmt.ExecContext(ctx, update.Rank, string(update.ID)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Storage) CountEntries(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leaderboard_entries`,
	).Scan(&count)
	return count, err
}

func (s *Storage) ReadyState(ctx context.Context) int {
	if err := s.db.PingContext(ctx); err != nil {
		return storage.ReadyStateDisconnected
	}
	return storage.ReadyStateConnected
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	var id string
	if err := row.Scan(&id, &entry.Name, &entry.Score, &entry.FinishedTime, &entry.Rank, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.ID = model.EntryID(id)
	return &entry, nil
}

func collectEntries(rows *sql.Rows) ([]*model.LeaderboardEntry, error) {
	entries := []*model.LeaderboardEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
