package mysql

import (
	"context"
	"database/sql"

	"github.com/priyanshu599/backendRantease/internal/domain"
)

type MessageRepo struct{ db *sql.DB }

func (r *MessageRepo) Create(ctx context.Context, m domain.Message) error {
	var propertyID any
	if m.PropertyID != nil {
		propertyID = *m.PropertyID
	}
	_, err := r.db.ExecContext(ctx, insertMessageSQL,
		m.ID, m.SenderID, m.ReceiverID, propertyID, m.Content, m.SentAt)
	return err
}

func (r *MessageRepo) ForUser(ctx context.Context, userID string) ([]domain.Message, error) {
	rows, err := r.db.QueryContext(ctx, messagesForUserSQL, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		var propertyID sql.NullString
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &propertyID, &m.Content, &m.SentAt); err != nil {
			return nil, err
		}
		if propertyID.Valid {
			pid := propertyID.String
			m.PropertyID = &pid
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
