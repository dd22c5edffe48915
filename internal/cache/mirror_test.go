package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfield/memorymatch/internal/model"
)

func testRecords() []model.LeaderboardRecord {
	return []model.LeaderboardRecord{
		{
			Name:       "Ada",
			Score:      900,
			Time:       20,
			Moves:      4,
			Accuracy:   1.0,
			Difficulty: model.DifficultyEasy,
			Theme:      model.ThemeEmoji,
			CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Name:       "Bo",
			Score:      700,
			Time:       35,
			Moves:      6,
			Accuracy:   0.66,
			Difficulty: model.DifficultyMedium,
			Theme:      model.ThemeAnimals,
			CreatedAt:  time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestWriteThenReadPreservesOrder(t *testing.T) {
	mirror := NewMirrorInDir(t.TempDir())
	records := testRecords()

	require.NoError(t, mirror.Write(records))

	got, err := mirror.Read()
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestReadMissingFileIsEmptySet(t *testing.T) {
	mirror := NewMirrorInDir(t.TempDir())

	got, err := mirror.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestReadMalformedFileIsEmptySet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	mirror := NewMirror(path)
	got, err := mirror.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteReplacesWholesale(t *testing.T) {
	mirror := NewMirrorInDir(t.TempDir())
	records := testRecords()

	require.NoError(t, mirror.Write(records))
	require.NoError(t, mirror.Write(records[:1]))

	got, err := mirror.Read()
	require.NoError(t, err)
	assert.Equal(t, records[:1], got)
}

func TestWriteCreatesParentDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	mirror := NewMirrorInDir(dir)

	require.NoError(t, mirror.Write(testRecords()))

	_, err := os.Stat(mirror.Path())
	require.NoError(t, err)
}

func TestWriteNilWritesEmptyArray(t *testing.T) {
	mirror := NewMirrorInDir(t.TempDir())

	require.NoError(t, mirror.Write(nil))

	got, err := mirror.Read()
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
