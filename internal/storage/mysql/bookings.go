package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type BookingRepo struct{ db *sql.DB }

func (r *BookingRepo) Create(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID, b.PropertyID, b.TenantID,
		dateOnly(b.StartDate), dateOnly(b.EndDate),
		b.TotalPrice, string(b.Status), b.IsPaid, b.CreatedAt)
	return err
}

func (r *BookingRepo) Get(ctx context.Context, id string) (domain.Booking, error) {
	return scanBooking(r.db.QueryRowContext(ctx, getBookingSQL, id))
}

func (r *BookingRepo) Update(ctx context.Context, b domain.Booking) error {
	res, err := r.db.ExecContext(ctx, updateBookingSQL, string(b.Status), b.IsPaid, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = ?)`, b.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *BookingRepo) HasConfirmedOverlap(ctx context.Context, propertyID string, start, end time.Time) (bool, error) {
	var conflict bool
	err := r.db.QueryRowContext(ctx, confirmedOverlapSQL,
		propertyID,
		dateOnly(end), dateOnly(start),
		dateOnly(start), dateOnly(end),
	).Scan(&conflict)
	return conflict, err
}

func (r *BookingRepo) ConfirmedForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	return r.query(ctx, confirmedForPropertySQL, propertyID)
}

func (r *BookingRepo) ForTenant(ctx context.Context, tenantID string) ([]domain.Booking, error) {
	return r.query(ctx, bookingsForTenantSQL, tenantID)
}

func (r *BookingRepo) ForProperty(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	return r.query(ctx, bookingsForPropertySQL, propertyID)
}

func (r *BookingRepo) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countBookingsByStatusSQL, string(status)).Scan(&n)
	return n, err
}

func (r *BookingRepo) query(ctx context.Context, q string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBooking(row rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var status string
	if err := row.Scan(&b.ID, &b.PropertyID, &b.TenantID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &status, &b.IsPaid, &b.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

// dateOnly truncates to a calendar day so DATE columns compare the way
// domain.Overlaps does.
func dateOnly(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
