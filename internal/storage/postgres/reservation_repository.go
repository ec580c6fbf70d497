package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umairmr377-gif/Play-Zone-sub000/internal/app"
	"github.com/umairmr377-gif/Play-Zone-sub000/internal/domain"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *ReservationRepository) ReservedSlots(ctx context.Context, courtID, date string) ([]string, error) {
	const query = `
SELECT slot
FROM reservations
WHERE court_id = $1 AND date = $2 AND status <> 'cancelled'
ORDER BY slot ASC`

	rows, err := r.query(ctx, query, courtID, date)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, storageErr("reserved slots", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, slot)
	}
	if rows.Err() != nil {
		if isInvalidUUID(rows.Err()) {
			return nil, domain.ErrInvalidID
		}
		return nil, storageErr("iterate slots", rows.Err())
	}
	return slots, nil
}

func (r *ReservationRepository) CreateReservation(ctx context.Context, res domain.Reservation) error {
	const stmt = `
INSERT INTO reservations (id, booking_id, court_id, date, slot, price, customer_name, customer_email, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.exec(ctx, stmt,
		res.ID,
		res.BookingID,
		res.CourtID,
		res.Date,
		res.Slot,
		res.Price,
		res.CustomerName,
		res.CustomerEmail,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotConflict
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storageErr("create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) GetReservationForUpdate(ctx context.Context, id string) (domain.Reservation, error) {
	const query = `
SELECT id, booking_id, court_id, date::text, slot, price, customer_name, customer_email, status, created_at
FROM reservations
WHERE id = $1
FOR UPDATE`

	res, err := r.scanReservation(r.queryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Reservation{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Reservation{}, domain.ErrReservationNotFound
		}
		return domain.Reservation{}, storageErr("get reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	const stmt = `UPDATE reservations SET status = $2 WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, status)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storageErr("update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) ListReservations(ctx context.Context, filter app.ReservationFilter) ([]domain.Reservation, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CourtID != "" {
		args = append(args, filter.CourtID)
		conds = append(conds, fmt.Sprintf("court_id = $%d", len(args)))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `
SELECT id, booking_id, court_id, date::text, slot, price, customer_name, customer_email, status, created_at
FROM reservations`
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY date ASC, slot ASC"

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		if isInvalidUUID(err) {
			return nil, domain.ErrInvalidID
		}
		return nil, storageErr("list reservations", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if rows.Err() != nil {
		if isInvalidUUID(rows.Err()) {
			return nil, domain.ErrInvalidID
		}
		return nil, storageErr("iterate reservations", rows.Err())
	}
	return reservations, nil
}

func (r *ReservationRepository) scanReservation(row pgx.Row) (domain.Reservation, error) {
	var (
		res    domain.Reservation
		status string
	)
	err := row.Scan(
		&res.ID,
		&res.BookingID,
		&res.CourtID,
		&res.Date,
		&res.Slot,
		&res.Price,
		&res.CustomerName,
		&res.CustomerEmail,
		&status,
		&res.CreatedAt,
	)
	if err != nil {
		return domain.Reservation{}, err
	}
	res.Status = domain.ReservationStatus(status)
	return res, nil
}

func (r *ReservationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ReservationRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *ReservationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
