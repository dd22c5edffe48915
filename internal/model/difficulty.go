package model

// Difficulty selects the board size and score baseline
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DifficultyConfig is the static tuning table for one difficulty tier
type DifficultyConfig struct {
	PairCount int
	BaseScore int
}

// DifficultyConfigs maps each tier to its pair count and base score
var DifficultyConfigs = map[Difficulty]DifficultyConfig{
	DifficultyEasy:   {PairCount: 4, BaseScore: 900},
	DifficultyMedium: {PairCount: 8, BaseScore: 1800},
	DifficultyHard:   {PairCount: 12, BaseScore: 3000},
}

// ConfigForDifficulty looks up the tuning for a tier
func ConfigForDifficulty(d Difficulty) (DifficultyConfig, error) {
	cfg, ok := DifficultyConfigs[d]
	if !ok {
		return DifficultyConfig{}, ErrUnknownDifficulty
	}
	return cfg, nil
}
