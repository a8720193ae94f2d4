package mysql

import (
	"context"
	"database/sql"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type ApplicationRepo struct{ db *sql.DB }

func (r *ApplicationRepo) Create(ctx context.Context, a domain.Application) error {
	_, err := r.db.ExecContext(ctx, insertApplicationSQL,
		a.ID, a.PropertyID, a.TenantID, string(a.Status), nullStr(a.Message), a.CreatedAt)
	return err
}

func (r *ApplicationRepo) Get(ctx context.Context, id string) (domain.Application, error) {
	return scanApplication(r.db.QueryRowContext(ctx, getApplicationSQL, id))
}

func (r *ApplicationRepo) GetForPair(ctx context.Context, propertyID, tenantID string) (domain.Application, error) {
	return scanApplication(r.db.QueryRowContext(ctx, getApplicationForPairSQL, propertyID, tenantID))
}

// Update rewrites status, message and createdAt in place; the row keeps
// its identity across a resubmission.
func (r *ApplicationRepo) Update(ctx context.Context, a domain.Application) error {
	res, err := r.db.ExecContext(ctx, updateApplicationSQL,
		string(a.Status), nullStr(a.Message), a.CreatedAt, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM applications WHERE id = ?)`, a.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *ApplicationRepo) ForProperty(ctx context.Context, propertyID string) ([]domain.Application, error) {
	return r.query(ctx, applicationsForPropertySQL, propertyID)
}

func (r *ApplicationRepo) ForTenant(ctx context.Context, tenantID string) ([]domain.Application, error) {
	return r.query(ctx, applicationsForTenantSQL, tenantID)
}

func (r *ApplicationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countApplicationsSQL).Scan(&n)
	return n, err
}

func (r *ApplicationRepo) query(ctx context.Context, q string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanApplication(row rowScanner) (domain.Application, error) {
	var a domain.Application
	var status string
	var msg sql.NullString
	if err := row.Scan(&a.ID, &a.PropertyID, &a.TenantID, &status, &msg, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Application{}, domain.ErrNotFound
		}
		return domain.Application{}, err
	}
	a.Status = domain.ApplicationStatus(status)
	a.Message = strVal(msg)
	return a, nil
}
