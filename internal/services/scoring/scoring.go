// Package scoring computes the displayed score for a game session. All
// functions are pure: the same counters always produce the same score, so
// callers recompute on every observable change instead of holding
// incremental state.
package scoring

import (
	"fmt"
	"math"

	"github.com/mfield/memorymatch/internal/model"
)

// Scoring weights
const (
	accuracyBonusWeight  = 450 // multiplied by accuracy in [0,1]
	timePenaltyPerSecond = 4
	movePenaltyPerExcess = 45 // per move beyond the pair count
)

// Accuracy returns matchedPairs/moves, or 0 before the first move
func Accuracy(matchedPairs, moves int) float64 {
	if moves == 0 {
		return 0
	}
	return float64(matchedPairs) / float64(moves)
}

// Score computes the displayed score from the session counters and the
// active difficulty tuning. Never negative.
func Score(cfg model.DifficultyConfig, matchedPairs, moves, elapsedSeconds int) int {
	progress := float64(cfg.BaseScore) * float64(matchedPairs) / float64(cfg.PairCount)
	accuracyBonus := Accuracy(matchedPairs, moves) * accuracyBonusWeight
	timePenalty := float64(elapsedSeconds * timePenaltyPerSecond)
	movePenalty := float64(max(0, moves-cfg.PairCount) * movePenaltyPerExcess)

	score := math.Round(progress + accuracyBonus - timePenalty - movePenalty)
	if score < 0 {
		return 0
	}
	return int(score)
}

// FormatTime renders a second count as mm:ss
func FormatTime(totalSeconds int) string {
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
