package engine

import (
	"context"

	"habitcore/internal/storage"
)

// StatsStore owns the single UserStats record.
type StatsStore struct {
	repo  *storage.StatsRepo
	stats UserStats
}

func newStatsStore(repo *storage.StatsRepo, initial UserStats) *StatsStore {
	return &StatsStore{repo: repo, stats: normalizeStats(initial)}
}

// AwardXP adds amount, persists, and reports whether the level went up.
// The in-memory stats only change once the write succeeds.
func (s *StatsStore) AwardXP(ctx context.Context, amount int) (bool, error) {
	next, levelUp := Award(s.stats, amount)
	if err := s.repo.Save(ctx, next); err != nil {
		return false, err
	}
	s.stats = next
	return levelUp, nil
}

func (s *StatsStore) Stats() UserStats { return s.stats }

// Percent is XPPercent of the current stats.
func (s *StatsStore) Percent() float64 { return XPPercent(s.stats) }

// Threshold is the XP needed to finish the current level.
func (s *StatsStore) Threshold() int { return Threshold(s.stats.Level) }
