package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petweb/internal/domain/messages"
)

type MessagesRepo struct {
	db *sql.DB
}

func NewMessagesRepo(db *sql.DB) *MessagesRepo {
	return &MessagesRepo{db: db}
}

func (r *MessagesRepo) Create(ctx context.Context, m messages.Message) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO messages (
			id, sender, recipient, body, response, sent_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		m.ID,
		m.Sender,
		toNullString(m.Recipient),
		m.Body,
		m.Response,
		m.Timestamp,
	)
	return err
}

func (r *MessagesRepo) GetByID(ctx context.Context, id string) (messages.Message, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, sender, recipient, body, response, sent_at
		FROM messages
		WHERE id = $1
	`, id)

	return scanMessage(row)
}

func (r *MessagesRepo) List(ctx context.Context) ([]messages.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, sender, recipient, body, response, sent_at
		FROM messages
		ORDER BY sent_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]messages.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *MessagesRepo) Update(ctx context.Context, m messages.Message) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE messages
		SET
			recipient = $2,
			response = $3
		WHERE id = $1
	`,
		m.ID,
		toNullString(m.Recipient),
		m.Response,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return messages.ErrNotFound
	}
	return nil
}

func (r *MessagesRepo) Delete(ctx context.Context, id string) (messages.Message, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM messages
		WHERE id = $1
		RETURNING id, sender, recipient, body, response, sent_at
	`, id)

	return scanMessage(row)
}

func scanMessage(row rowScanner) (messages.Message, error) {
	var m messages.Message
	var recipient sql.NullString

	if err := row.Scan(
		&m.ID,
		&m.Sender,
		&recipient,
		&m.Body,
		&m.Response,
		&m.Timestamp,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return messages.Message{}, messages.ErrNotFound
		}
		return messages.Message{}, err
	}

	if recipient.Valid {
		m.Recipient = recipient.String
	}

	return m, nil
}
