package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/integraprice-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore implementa KeyValueStore sobre la tabla kv_records (value JSONB).
type KVStore struct {
	db Querier
}

// NewKVStore construye el almacén con un pool o una transacción.
func NewKVStore(db Querier) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value::text FROM kv_records WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		if isUndefinedTable(err) {
			return nil, false, fmt.Errorf("kv get %s: tabla kv_records sin migrar: %w", key, err)
		}
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM kv_records WHERE key = $1`, key); err != nil {
		return fmt.Errorf("kv delete %s: %w", key, err)
	}
	return nil
}

// Usage devuelve la cantidad de claves y el tamaño total en KB de los valores almacenados.
func (s *KVStore) Usage(ctx context.Context) (keys int64, sizeKB decimal.Decimal, err error) {
	err = s.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(pg_column_size(value)), 0)::numeric / 1024
		FROM kv_records`).Scan(&keys, &sizeKB)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("kv usage: %w", err)
	}
	return keys, sizeKB, nil
}
