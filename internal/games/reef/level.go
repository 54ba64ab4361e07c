package reef

import (
	"fmt"

	"github.com/lostreef/lostreef/internal/config"
)

// Hand-tuned score targets for the first 30 levels. Past the table the
// curve continues linearly at 5000 points per level.
var targetScores = [30]int{
	50, 120, 280, 450, 700,
	1000, 1400, 1900, 2500, 3200,
	4000, 4900, 5900, 7000, 8200,
	9500, 11000, 12600, 14400, 16300,
	18400, 20700, 23200, 25900, 28800,
	31900, 35200, 38700, 42400, 46300,
}

const (
	pastTableStep = 5000
	bannerTicks   = 180
)

// TargetScore returns the cumulative score needed to clear a level.
func TargetScore(level int) int {
	if level <= 0 {
		return targetScores[0]
	}
	if level <= len(targetScores) {
		return targetScores[level-1]
	}
	return targetScores[len(targetScores)-1] + (level-len(targetScores))*pastTableStep
}

// IsMilestone reports whether completing a level earns a celebration.
func IsMilestone(level int) bool {
	switch level {
	case 10, 20, 30, 40, 50:
		return true
	}
	return false
}

// MilestoneMessage returns the celebration text for a completed level.
func MilestoneMessage(level int) string {
	switch level {
	case 10:
		return "Congratulations! You reached level 10!"
	case 20:
		return "Incredible! Level 20 conquered!"
	case 30:
		return "MASTER OF THE REEF! Level 30 complete!"
	case 40:
		return "SEA LEGEND! Level 40 reached!"
	case 50:
		return "EMPEROR OF THE OCEAN! Level 50 mastered!"
	}
	return fmt.Sprintf("Level %d completed!", level)
}

// ShouldAdvance reports whether the current level is cleared: either
// the score target is met or no enemies remain.
func ShouldAdvance(score, target, remainingEnemies int) bool {
	return score >= target || remainingEnemies == 0
}

// PointsToNext returns how many points remain to the target, never
// negative.
func PointsToNext(score, target int) int {
	if score >= target {
		return 0
	}
	return target - score
}

// ZoneLabel returns the depth-zone badge shown once the player climbs
// high enough. Empty below level 10.
func ZoneLabel(level int) string {
	switch {
	case level >= 30:
		return "MASTER ZONE!"
	case level >= 20:
		return "EXPERT ZONE!"
	case level >= 10:
		return "Advanced Zone"
	}
	return ""
}

// EnemyPoints returns the score for defeating an enemy at a level.
func EnemyPoints(s config.ScoringConfig, level int) int {
	return s.EnemyPoints + level*s.EnemyPointsPerLevel
}

// PearlValue returns the score for collecting a pearl at a level.
func PearlValue(s config.ScoringConfig, level int) int {
	return s.PearlPoints + level*s.PearlPointsPerLevel
}

// PerformanceMessage grades a finished run by its final score.
func PerformanceMessage(score int) string {
	switch {
	case score < 100:
		return "Keep practicing, little fish!"
	case score < 200:
		return "Good swim! The reef remembers you."
	default:
		return "Outstanding! A true guardian of the reef!"
	}
}
