package infrastructure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewExportsPool connects to the export history database. An empty dsn means
// history is disabled and yields a nil pool.
func NewExportsPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, nil
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect exports db: %w", err)
	}
	return pool, nil
}
