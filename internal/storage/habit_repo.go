package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type HabitRepo struct {
	kv KV
}

func NewHabitRepo(kv KV) *HabitRepo {
	return &HabitRepo{kv: kv}
}

// Load returns the stored habit list. A missing key yields (nil, false, nil);
// an undecodable value yields an error wrapping ErrCorrupt.
func (r *HabitRepo) Load(ctx context.Context) ([]Habit, bool, error) {
	raw, ok, err := r.kv.Get(ctx, KeyHabits)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	var out []Habit
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, true, fmt.Errorf("habits decode: %w: %v", ErrCorrupt, err)
	}
	return out, true, nil
}

// Save writes the full ordered list.
func (r *HabitRepo) Save(ctx context.Context, habits []Habit) error {
	if habits == nil {
		habits = []Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("habits encode: %w", err)
	}
	return r.kv.Set(ctx, KeyHabits, string(data))
}
