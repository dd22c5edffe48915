package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfield/memorymatch/internal/model"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, Accuracy(0, 0))
	assert.Equal(t, 1.0, Accuracy(4, 4))
	assert.Equal(t, 0.5, Accuracy(4, 8))
}

func TestScoreIsDeterministic(t *testing.T) {
	cfg := model.DifficultyConfigs[model.DifficultyMedium]

	first := Score(cfg, 8, 10, 45)
	second := Score(cfg, 8, 10, 45)
	assert.Equal(t, first, second)
}

func TestScorePerfectEasyGame(t *testing.T) {
	cfg := model.DifficultyConfigs[model.DifficultyEasy]

	// All pairs matched first try: full base plus the full accuracy bonus,
	// less only the time penalty
	score := Score(cfg, 4, 4, 10)
	assert.Equal(t, 900+450-10*4, score)
}

func TestScorePenalizesExcessMoves(t *testing.T) {
	cfg := model.DifficultyConfigs[model.DifficultyEasy]

	perfect := Score(cfg, 4, 4, 10)
	sloppy := Score(cfg, 4, 6, 10)
	assert.Less(t, sloppy, perfect)
}

func TestScoreNeverNegative(t *testing.T) {
	cfg := model.DifficultyConfigs[model.DifficultyEasy]

	score := Score(cfg, 0, 50, 10000)
	assert.Equal(t, 0, score)
}

func TestScorePartialProgress(t *testing.T) {
	cfg := model.DifficultyConfigs[model.DifficultyMedium]

	// 4 of 8 pairs in 5 moves at 20s:
	// 1800*4/8 + 0.8*450 - 20*4 - 0 = 900 + 360 - 80 = 1180
	score := Score(cfg, 4, 5, 20)
	assert.Equal(t, 1180, score)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00", FormatTime(0))
	assert.Equal(t, "00:59", FormatTime(59))
	assert.Equal(t, "01:05", FormatTime(65))
	assert.Equal(t, "10:00", FormatTime(600))
}
