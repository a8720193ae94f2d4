package mysql

import (
	"context"
	"database/sql"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type PropertyRepo struct{ db *sql.DB }

func (r *PropertyRepo) Create(ctx context.Context, p domain.Property) error {
	_, err := r.db.ExecContext(ctx, insertPropertySQL,
		p.ID, p.Title, nullStr(p.Description), p.Price, p.Location, p.CreatedBy, p.CreatedAt)
	return err
}

func (r *PropertyRepo) Get(ctx context.Context, id string) (domain.Property, error) {
	row := r.db.QueryRowContext(ctx, getPropertySQL, id)
	return scanProperty(row)
}

func (r *PropertyRepo) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PropertyRepo) Update(ctx context.Context, p domain.Property) error {
	res, err := r.db.ExecContext(ctx, updatePropertySQL,
		p.Title, nullStr(p.Description), p.Price, p.Location, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// The row may exist with identical values; treat as success only
		// when it does.
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM properties WHERE id = ?)`, p.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *PropertyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deletePropertySQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countPropertiesSQL).Scan(&n)
	return n, err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	var desc sql.NullString
	if err := row.Scan(&p.ID, &p.Title, &desc, &p.Price, &p.Location, &p.CreatedBy, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Property{}, domain.ErrNotFound
		}
		return domain.Property{}, err
	}
	p.Description = strVal(desc)
	return p, nil
}
