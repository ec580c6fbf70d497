package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type CourtRepository struct {
	pool *pgxpool.Pool
}

func NewCourtRepository(pool *pgxpool.Pool) *CourtRepository {
	return &CourtRepository{pool: pool}
}

func (r *CourtRepository) CreateCourt(ctx context.Context, court domain.Court) error {
	const stmt = `
INSERT INTO courts (id, name, location, hourly_price, slots, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		court.ID,
		court.Name,
		court.Location,
		court.HourlyPrice,
		court.Slots,
		court.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storageErr("create court", err)
	}
	return nil
}

func (r *CourtRepository) GetCourt(ctx context.Context, id string) (domain.Court, error) {
	const query = `
SELECT id, name, location, hourly_price, slots, created_at
FROM courts
WHERE id = $1`

	var c domain.Court
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Location, &c.HourlyPrice, &c.Slots, &c.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Court{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Court{}, domain.ErrCourtNotFound
		}
		return domain.Court{}, storageErr("get court", err)
	}
	return c, nil
}

func (r *CourtRepository) ListCourts(ctx context.Context) ([]domain.Court, error) {
	const query = `
SELECT id, name, location, hourly_price, slots, created_at
FROM courts
ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list courts", err)
	}
	defer rows.Close()

	var courts []domain.Court
	for rows.Next() {
		var c domain.Court
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.HourlyPrice, &c.Slots, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan court: %w", err)
		}
		courts = append(courts, c)
	}
	if rows.Err() != nil {
		return nil, storageErr("iterate courts", rows.Err())
	}
	return courts, nil
}

func (r *CourtRepository) UpdateCourt(ctx context.Context, court domain.Court) error {
	const stmt = `
UPDATE courts
SET name = $2, location = $3, hourly_price = $4, slots = $5
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		court.ID,
		court.Name,
		court.Location,
		court.HourlyPrice,
		court.Slots,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storageErr("update court", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourtNotFound
	}
	return nil
}
