package root

import (
	"context"
	"os"

	"go.uber.org/zap"

	"habitcore/internal/engine"
	"habitcore/internal/storage"
)

// resolveDBPath applies flag > env > config > default.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if p := os.Getenv(storage.EnvDBPath); p != "" {
		return p, nil
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return storage.DefaultDBPath()
}

func openKV(ctx context.Context) (storage.KV, error) {
	if ephemeral {
		logger.Debug("using in-memory store")
		return storage.NewMemoryKV(), nil
	}
	path, err := resolveDBPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("opening store", zap.String("path", path))
	return storage.OpenSQLiteKV(ctx, path)
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	kv, err := openKV(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc, err := engine.Open(ctx, kv, engine.WithLogger(logger))
	if err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	cleanup := func() {
		_ = svc.Close()
	}
	return svc, cleanup, nil
}
