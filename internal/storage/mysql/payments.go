package mysql

import (
	"context"
	"database/sql"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type PaymentRepo struct{ db *sql.DB }

func (r *PaymentRepo) Create(ctx context.Context, p domain.Payment) error {
	_, err := r.db.ExecContext(ctx, insertPaymentSQL,
		p.ID, p.BookingID, p.PropertyID, p.UserID, p.Amount, p.Status, p.CreatedAt)
	return err
}

func (r *PaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	return r.query(ctx, listPaymentsSQL)
}

func (r *PaymentRepo) ForUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	return r.query(ctx, paymentsForUserSQL, userID)
}

func (r *PaymentRepo) ForLandlord(ctx context.Context, landlordID string) ([]domain.Payment, error) {
	return r.query(ctx, paymentsForLandlordSQL, landlordID)
}

func (r *PaymentRepo) TotalAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, totalPaymentsSQL).Scan(&total)
	return total, err
}

func (r *PaymentRepo) query(ctx context.Context, q string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.PropertyID, &p.UserID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
