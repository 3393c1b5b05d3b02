package engine

import (
	"context"

	"habitcore/internal/storage"
)

// RunDailyReset clears today's completion flags when the stored reset marker
// is not today's date, then records today. A missing marker counts as a new
// day. It reports whether a reset ran.
//
// This is checked once per process start; a process that stays up across
// midnight keeps yesterday's flags until it is restarted.
func RunDailyReset(ctx context.Context, habits *HabitStore, markers *storage.ResetRepo, clock Clock) (bool, error) {
	last, err := markers.LastResetDate(ctx)
	if err != nil {
		return false, err
	}
	now := today(clock)
	if last == now {
		return false, nil
	}
	if err := habits.ResetDaily(ctx); err != nil {
		return false, err
	}
	if err := markers.SetLastResetDate(ctx, now); err != nil {
		return false, err
	}
	return true, nil
}
