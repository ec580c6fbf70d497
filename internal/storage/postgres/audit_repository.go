package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) AppendAudit(ctx context.Context, entry domain.AuditEntry) error {
	const stmt = `
INSERT INTO audit_log (id, actor, action, entity_type, entity_id, detail, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, stmt,
		entry.ID,
		entry.Actor,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return storageErr("append audit", err)
	}
	return nil
}

func (r *AuditRepository) ListAudit(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	const query = `
SELECT id, actor, action, entity_type, entity_id, detail, created_at
FROM audit_log
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("list audit", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, storageErr("iterate audit entries", rows.Err())
	}
	return entries, nil
}
