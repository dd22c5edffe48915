package sqlite

// Config holds SQLite connection settings
type Config struct {
	// Path is the database file path (":memory:" for an ephemeral store)
	Path string
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path: "memorymatch.db",
	}
}
