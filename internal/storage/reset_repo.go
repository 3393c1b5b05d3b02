package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// ResetRepo stores the date marker of the last daily reset.
type ResetRepo struct {
	kv KV
}

func NewResetRepo(kv KV) *ResetRepo {
	return &ResetRepo{kv: kv}
}

// LastResetDate returns the marker, or "" when none was recorded.
func (r *ResetRepo) LastResetDate(ctx context.Context) (string, error) {
	raw, ok, err := r.kv.Get(ctx, KeyLastResetDate)
	if err != nil || !ok {
		return "", err
	}
	var date string
	if err := json.Unmarshal([]byte(raw), &date); err != nil {
		// Accept an unquoted date as-is.
		return raw, nil
	}
	return date, nil
}

func (r *ResetRepo) SetLastResetDate(ctx context.Context, date string) error {
	data, err := json.Marshal(date)
	if err != nil {
		return fmt.Errorf("reset date encode: %w", err)
	}
	return r.kv.Set(ctx, KeyLastResetDate, string(data))
}
