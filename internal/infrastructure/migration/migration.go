package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  string
}

// Migrations is the ordered list applied on startup. Every statement is
// idempotent.
var Migrations = []Migration{
	{
		Name: "create_resume_exports",
		SQL: `
		CREATE TABLE IF NOT EXISTS resume_exports (
			id UUID PRIMARY KEY,
			file_name TEXT NOT NULL,
			template TEXT NOT NULL,
			status TEXT NOT NULL,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
	},
	{
		Name: "index_resume_exports_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS resume_exports_created_at_idx ON resume_exports (created_at DESC);`,
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	if pool == nil {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("Starting database migrations")

	for _, m := range Migrations {
		if _, err := pool.Exec(ctx, m.SQL); err != nil {
			log.Error("Migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		log.Info("Migration completed", zap.String("name", m.Name))
	}

	log.Info("All migrations completed successfully")
	return nil
}
