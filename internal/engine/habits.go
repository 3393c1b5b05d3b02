package engine

import (
	"context"
	"strings"
	"unicode/utf8"

	"habitcore/internal/storage"
)

// MaxNameLength bounds a habit name, counted in runes.
const MaxNameLength = 50

// Habit is a single tracked habit. ID is the only identity; Name never changes.
type Habit = storage.Habit

// HabitStore owns the ordered habit list (newest first) and mirrors every
// change to storage.
type HabitStore struct {
	repo   *storage.HabitRepo
	clock  Clock
	habits []Habit
}

func newHabitStore(repo *storage.HabitRepo, clock Clock, initial []Habit) *HabitStore {
	return &HabitStore{repo: repo, clock: clock, habits: initial}
}

// normalizeName trims the name and caps it at MaxNameLength runes.
// Returns "" when nothing usable is left.
func normalizeName(name string) string {
	n := strings.TrimSpace(name)
	if utf8.RuneCountInString(n) > MaxNameLength {
		n = strings.TrimSpace(string([]rune(n)[:MaxNameLength]))
	}
	return n
}

// Create adds a habit at the front. A blank name is ignored: (nil, nil).
func (s *HabitStore) Create(ctx context.Context, name string) (*Habit, error) {
	n := normalizeName(name)
	if n == "" {
		return nil, nil
	}
	h := Habit{
		ID:   s.nextID(),
		Name: n,
	}
	s.habits = append([]Habit{h}, s.habits...)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &h, nil
}

// nextID returns the clock in Unix milliseconds, bumped past any existing id.
func (s *HabitStore) nextID() int64 {
	id := s.clock.Now().UnixMilli()
	for _, h := range s.habits {
		if h.ID >= id {
			id = h.ID + 1
		}
	}
	return id
}

// Delete removes the habit with id. Unknown ids are a no-op.
func (s *HabitStore) Delete(ctx context.Context, id int64) (bool, error) {
	idx := s.index(id)
	if idx < 0 {
		return false, s.persist(ctx)
	}
	s.habits = append(s.habits[:idx:idx], s.habits[idx+1:]...)
	return true, s.persist(ctx)
}

// Complete marks id done for today and advances its streak. It reports false
// when id is unknown or already completed today. A habit whose flag was
// cleared by a forced reset but whose LastCompleted is today only gets the
// flag back; the streak is left alone.
func (s *HabitStore) Complete(ctx context.Context, id int64) (bool, error) {
	idx := s.index(id)
	if idx < 0 || s.habits[idx].CompletedToday {
		return false, nil
	}

	prev := s.habits[idx]
	h := &s.habits[idx]
	todayStr := today(s.clock)
	if h.LastCompleted != nil && *h.LastCompleted == todayStr {
		h.CompletedToday = true
		if err := s.persist(ctx); err != nil {
			s.habits[idx] = prev
			return false, err
		}
		return false, nil
	}

	if h.LastCompleted != nil && *h.LastCompleted == yesterday(s.clock) {
		h.Streak++
	} else {
		h.Streak = 1
	}
	h.CompletedToday = true
	h.LastCompleted = &todayStr

	if err := s.persist(ctx); err != nil {
		s.habits[idx] = prev
		return false, err
	}
	return true, nil
}

// ResetDaily clears CompletedToday on every habit. Streaks and dates stay.
func (s *HabitStore) ResetDaily(ctx context.Context) error {
	for i := range s.habits {
		s.habits[i].CompletedToday = false
	}
	return s.persist(ctx)
}

// List returns a copy of the habits, newest first.
func (s *HabitStore) List() []Habit {
	out := make([]Habit, len(s.habits))
	copy(out, s.habits)
	return out
}

// Get returns a copy of the habit with id.
func (s *HabitStore) Get(id int64) (Habit, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Habit{}, false
	}
	return s.habits[idx], true
}

func (s *HabitStore) Count() int { return len(s.habits) }

func (s *HabitStore) CompletedCount() int {
	n := 0
	for _, h := range s.habits {
		if h.CompletedToday {
			n++
		}
	}
	return n
}

// BestStreak is the longest current streak, 0 when there are no habits.
func (s *HabitStore) BestStreak() int {
	best := 0
	for _, h := range s.habits {
		if h.Streak > best {
			best = h.Streak
		}
	}
	return best
}

func (s *HabitStore) index(id int64) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *HabitStore) persist(ctx context.Context) error {
	return s.repo.Save(ctx, s.habits)
}
