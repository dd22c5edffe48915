package cli

import (
	"os"
	"path/filepath"

	"github.com/mfield/memorymatch/internal/cache"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	DataDir   string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("MEMORYMATCH_SERVER", "http://localhost:4000"),
		DataDir:   getEnvOrDefault("MEMORYMATCH_DATA_DIR", defaultDataDir()),
		Output:    "text",
		Verbose:   false,
	}
}

// MirrorPath returns the local leaderboard mirror file path
func (c *Config) MirrorPath() string {
	return filepath.Join(c.DataDir, cache.FileName)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".memorymatch"
	}
	return filepath.Join(home, ".memorymatch")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
