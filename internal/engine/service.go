package engine

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"habitcore/internal/storage"
)

// Service owns both stores for one session. Calls are serialized.
type Service struct {
	mu sync.Mutex

	kv     storage.KV
	clock  Clock
	logger *zap.Logger

	habits  *HabitStore
	stats   *StatsStore
	markers *storage.ResetRepo

	resetOnOpen bool
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// Open loads persisted state (falling back to defaults when it is missing or
// unreadable) and runs the daily reset check once.
func Open(ctx context.Context, kv storage.KV, opts ...Option) (*Service, error) {
	s := &Service{
		kv:      kv,
		clock:   SystemClock,
		logger:  zap.NewNop(),
		markers: storage.NewResetRepo(kv),
	}
	for _, opt := range opts {
		opt(s)
	}

	habitRepo := storage.NewHabitRepo(kv)
	habits, _, err := habitRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, err
		}
		s.logger.Warn("stored habits unreadable, starting empty", zap.Error(err))
		habits = nil
	}

	statsRepo := storage.NewStatsRepo(kv)
	stats, _, err := statsRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCorrupt) {
			return nil, err
		}
		s.logger.Warn("stored stats unreadable, starting at level 1", zap.Error(err))
		stats = storage.DefaultStats()
	}

	s.habits = newHabitStore(habitRepo, s.clock, habits)
	s.stats = newStatsStore(statsRepo, stats)

	reset, err := RunDailyReset(ctx, s.habits, s.markers, s.clock)
	if err != nil {
		return nil, err
	}
	s.resetOnOpen = reset
	if reset {
		s.logger.Info("daily reset", zap.String("date", today(s.clock)), zap.Int("habits", s.habits.Count()))
	}

	s.logger.Debug("service opened",
		zap.Int("habits", s.habits.Count()),
		zap.Int("level", s.stats.Stats().Level),
		zap.Int("xp", s.stats.Stats().XP))
	return s, nil
}

// ResetOnOpen reports whether Open cleared yesterday's completion flags.
func (s *Service) ResetOnOpen() bool { return s.resetOnOpen }

// Close releases the underlying storage.
func (s *Service) Close() error {
	return s.kv.Close()
}

// AddHabit creates a habit. A blank name is ignored and yields (nil, nil).
func (s *Service) AddHabit(ctx context.Context, name string) (*Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.habits.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	if h != nil {
		s.logger.Info("habit created", zap.Int64("id", h.ID), zap.String("name", h.Name))
	}
	return h, nil
}

// DeleteHabit removes id and reports whether it existed.
func (s *Service) DeleteHabit(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.habits.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Info("habit deleted", zap.Int64("id", id))
	}
	return ok, nil
}

type CompleteResult struct {
	Habit       Habit
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// CompleteHabit completes id for today and awards XPPerCompletion.
// It returns (nil, nil) when the completion was a no-op.
func (s *Service) CompleteHabit(ctx context.Context, id int64) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	done, err := s.habits.Complete(ctx, id)
	if err != nil || !done {
		return nil, err
	}

	levelBefore := s.stats.Stats().Level
	levelUp, err := s.stats.AwardXP(ctx, XPPerCompletion)
	if err != nil {
		return nil, err
	}
	h, _ := s.habits.Get(id)
	res := &CompleteResult{
		Habit:       h,
		XPAwarded:   XPPerCompletion,
		LevelBefore: levelBefore,
		LevelAfter:  s.stats.Stats().Level,
		LevelUp:     levelUp,
	}

	s.logger.Info("habit completed",
		zap.Int64("id", id),
		zap.Int("streak", h.Streak),
		zap.Int("xp", s.stats.Stats().XP))
	if levelUp {
		s.logger.Info("level up", zap.Int("from", levelBefore), zap.Int("to", res.LevelAfter))
	}
	return res, nil
}

// ResetDaily clears today's completion flags immediately and moves the
// reset marker to today.
func (s *Service) ResetDaily(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.habits.ResetDaily(ctx); err != nil {
		return err
	}
	return s.markers.SetLastResetDate(ctx, today(s.clock))
}

// Habit looks up a single habit.
func (s *Service) Habit(id int64) (Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.habits.Get(id)
	if !ok {
		return Habit{}, ErrHabitNotFound
	}
	return h, nil
}

// Snapshot is everything the presentation layer renders.
type Snapshot struct {
	Habits         []Habit
	Stats          UserStats
	Threshold      int
	XPPercent      float64
	CompletedToday int
	BestStreak     int
	Today          string
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Habits:         s.habits.List(),
		Stats:          s.stats.Stats(),
		Threshold:      s.stats.Threshold(),
		XPPercent:      s.stats.Percent(),
		CompletedToday: s.habits.CompletedCount(),
		BestStreak:     s.habits.BestStreak(),
		Today:          today(s.clock),
	}
}
