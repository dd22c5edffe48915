package factory

import (
	"io"
	"log/slog"

	"github.com/mfield/memorymatch/internal/config"
	"github.com/mfield/memorymatch/internal/dependencies/clock"
	"github.com/mfield/memorymatch/internal/dependencies/random"
	"github.com/mfield/memorymatch/internal/dependencies/scheduler"
	"github.com/mfield/memorymatch/internal/services/deck"
	"github.com/mfield/memorymatch/internal/services/rank"
	"github.com/mfield/memorymatch/internal/storage"
	"github.com/mfield/memorymatch/internal/storage/memory"
	redisstorage "github.com/mfield/memorymatch/internal/storage/redis"
	sqlitestorage "github.com/mfield/memorymatch/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Random    random.Random
	Scheduler scheduler.Scheduler

	// Services
	DeckService    *deck.Service
	RankController *rank.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLiteConfig holds SQLite settings (required if StorageType is "sqlite")
	SQLiteConfig *sqlitestorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisConfig != nil {
			redisCfg = *cfg.RedisConfig
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case config.StorageTypeSQLite:
		sqliteCfg := sqlitestorage.DefaultConfig()
		if cfg.SQLiteConfig != nil {
			sqliteCfg = *cfg.SQLiteConfig
		}
		sqliteStore, err := sqlitestorage.New(sqliteCfg, logger)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		store = memory.New()
	}

	return newWithDependencies(store, clock.New(), random.New(), scheduler.New(), logger), nil
}

// newWithDependencies wires the services over explicit dependencies
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	sched scheduler.Scheduler,
	logger *slog.Logger,
) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Scheduler:      sched,
		DeckService:    deck.New(rnd),
		RankController: rank.NewController(store, clk, logger),
	}
}
