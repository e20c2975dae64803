package engine

import "time"

// Points per cell for player-driven drops.
const (
	SoftDropPoints = 1
	HardDropPoints = 2
)

// MaxComboMultiplier caps the combo factor applied to plain line clears.
const MaxComboMultiplier = 5

// LinesPerLevel is the number of cleared lines per level step.
const LinesPerLevel = 10

var (
	lineClearPoints = [...]int{0, 40, 100, 300, 1200}
	fullSpinPoints  = [...]int{400, 800, 1200, 1600}
	miniSpinPoints  = [...]int{200, 200, 400, 400}
)

// LineClearScore returns the plain reward for clearing lines at level with
// the given combo count.
func LineClearScore(lines, level, combo int) int {
	if lines <= 0 || lines >= len(lineClearPoints) {
		return 0
	}
	mult := min(max(combo, 1), MaxComboMultiplier)
	return lineClearPoints[lines] * level * mult
}

// SpinScore returns the T-spin reward for lines at level. ok is false when
// there is no spin or the line count has no spin entry, in which case the
// caller falls back to LineClearScore.
func SpinScore(spin Spin, lines, level int) (points int, ok bool) {
	var table [4]int
	switch spin {
	case SpinFull:
		table = fullSpinPoints
	case SpinMini:
		table = miniSpinPoints
	default:
		return 0, false
	}
	if lines < 0 || lines >= len(table) {
		return 0, false
	}
	return table[lines] * level, true
}

// LevelFor returns the level reached after lines cleared lines.
func LevelFor(lines, startLevel int) int {
	return max(startLevel, 1+lines/LinesPerLevel)
}

// SpeedFor returns the gravity interval at level.
func SpeedFor(level int) time.Duration {
	if level <= 9 {
		return time.Duration(500-(level-1)*35) * time.Millisecond
	}
	return time.Duration(max(150, 200-(level-9)*5)) * time.Millisecond
}
