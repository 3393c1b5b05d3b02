package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

type StatsRepo struct {
	kv KV
}

func NewStatsRepo(kv KV) *StatsRepo {
	return &StatsRepo{kv: kv}
}

// Load returns the stored stats, or DefaultStats when the key is absent.
// The caller is responsible for normalizing level/xp into range.
func (r *StatsRepo) Load(ctx context.Context) (Stats, bool, error) {
	raw, ok, err := r.kv.Get(ctx, KeyStats)
	if err != nil {
		return DefaultStats(), false, err
	}
	if !ok {
		return DefaultStats(), false, nil
	}
	var s Stats
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return DefaultStats(), true, fmt.Errorf("stats decode: %w: %v", ErrCorrupt, err)
	}
	return s, true, nil
}

func (r *StatsRepo) Save(ctx context.Context, s Stats) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("stats encode: %w", err)
	}
	return r.kv.Set(ctx, KeyStats, string(data))
}
