package repository

import (
	"context"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo stores export history. With a nil pool every call is a no-op,
// which is how the service runs when no database is configured.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

// Enabled reports whether a database backs the repository.
func (r *ExportsRepo) Enabled() bool {
	return r != nil && r.pool != nil
}

func (r *ExportsRepo) Record(ctx context.Context, ev *domain.ExportEvent) error {
	if !r.Enabled() {
		return nil
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO resume_exports (id, file_name, template, status, size_bytes, error, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, size_bytes = EXCLUDED.size_bytes, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at`,
		ev.ID, ev.FileName, ev.Template, string(ev.Status), ev.SizeBytes, ev.Error, ev.CreatedAt, ev.UpdatedAt)
	if err != nil {
		return fmt.Errorf("exports_repo: upsert %s: %w", ev.ID, err)
	}
	return nil
}

// Recent returns the latest export events, newest first.
func (r *ExportsRepo) Recent(ctx context.Context, limit int) ([]domain.ExportEvent, error) {
	if !r.Enabled() {
		return []domain.ExportEvent{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `SELECT id, file_name, template, status, size_bytes, error, created_at, updated_at
		FROM resume_exports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("exports_repo: query recent: %w", err)
	}
	defer rows.Close()

	out := []domain.ExportEvent{}
	for rows.Next() {
		var ev domain.ExportEvent
		var status string
		if err := rows.Scan(&ev.ID, &ev.FileName, &ev.Template, &status, &ev.SizeBytes, &ev.Error, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
			return nil, fmt.Errorf("exports_repo: scan: %w", err)
		}
		ev.Status = domain.ExportStatus(status)
		out = append(out, ev)
	}
	return out, rows.Err()
}
