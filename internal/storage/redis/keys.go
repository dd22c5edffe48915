package redis

import (
	"fmt"

	"github.com/mfield/memorymatch/internal/model"
)

// Key prefix for all leaderboard data
const keyPrefix = "memorymatch"

// entryKey returns the Redis key for a LeaderboardEntry
func entryKey(id model.EntryID) string {
	return fmt.Sprintf("%s:entry:%s", keyPrefix, id)
}

// entryIndexKey returns the Redis key for the SET of all entry ids
func entryIndexKey() string {
	return fmt.Sprintf("%s:idx:entries", keyPrefix)
}
