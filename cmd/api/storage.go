package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/integraprice-api/internal/domain/repository"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/memory"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/integraprice-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/integraprice-api/internal/interfaces/http"
	"github.com/jhoicas/integraprice-api/pkg/config"
)

// storageBackend almacén clave-valor elegido por STORAGE_DRIVER.
type storageBackend struct {
	kv    repository.KeyValueStore
	usage httpRouter.StorageUsage
	close func()
}

func openStorage(ctx context.Context, cfg *config.Config) (*storageBackend, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return &storageBackend{kv: memory.NewKVStore(), close: func() {}}, nil

	case config.StorageSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &storageBackend{kv: sqlite.NewKVStore(db), close: func() { _ = db.Close() }}, nil

	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(pool); err != nil {
			pool.Close()
			return nil, err
		}
		kv := postgres.NewKVStore(pool)
		return &storageBackend{kv: kv, usage: kv, close: pool.Close}, nil
	}
	return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
}
