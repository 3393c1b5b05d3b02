package engine

import (
	"math"

	"habitcore/internal/storage"
)

const (
	// BaseThreshold is the XP needed to finish level 1.
	BaseThreshold = 100.0

	// ThresholdGrowth is the per-level multiplier applied to BaseThreshold.
	ThresholdGrowth = 1.2

	// XPPerCompletion is awarded for every habit completion.
	XPPerCompletion = 20
)

// UserStats is the level/XP pair. After normalization 0 <= XP < Threshold(Level).
type UserStats = storage.Stats

// Threshold returns the XP required to complete level: floor(100 * 1.2^(level-1)).
// Levels below 1 are treated as 1.
func Threshold(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseThreshold * math.Pow(ThresholdGrowth, float64(level-1))))
}

// Award adds amount XP to s and rolls over as many levels as the total covers.
// Negative amounts count as zero. The bool reports whether any level was gained.
func Award(s UserStats, amount int) (UserStats, bool) {
	if amount < 0 {
		amount = 0
	}
	out := normalizeStats(UserStats{Level: s.Level, XP: s.XP + amount})
	return out, out.Level > max(s.Level, 1)
}

// XPPercent is progress through the current level, capped at 100.
func XPPercent(s UserStats) float64 {
	pct := float64(s.XP) / float64(Threshold(s.Level)) * 100
	return math.Min(pct, 100)
}

// normalizeStats clamps level/xp into range and rolls over excess XP.
// Terminates because Threshold is positive and strictly increasing.
func normalizeStats(s UserStats) UserStats {
	if s.Level < 1 {
		s.Level = 1
	}
	if s.XP < 0 {
		s.XP = 0
	}
	for cur := Threshold(s.Level); s.XP >= cur; cur = Threshold(s.Level) {
		s.XP -= cur
		s.Level++
	}
	return s
}

