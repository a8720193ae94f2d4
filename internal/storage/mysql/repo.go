package mysql

import "database/sql"

// Repos bundles every repository over one *sql.DB handle.
type Repos struct {
	Properties   *PropertyRepo
	Bookings     *BookingRepo
	Applications *ApplicationRepo
	Users        *UserRepo
	Payments     *PaymentRepo
	Messages     *MessageRepo
}

func New(db *sql.DB) *Repos {
	return &Repos{
		Properties:   &PropertyRepo{db: db},
		Bookings:     &BookingRepo{db: db},
		Applications: &ApplicationRepo{db: db},
		Users:        &UserRepo{db: db},
		Payments:     &PaymentRepo{db: db},
		Messages:     &MessageRepo{db: db},
	}
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func strVal(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
