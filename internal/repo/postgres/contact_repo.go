package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syberke1354/exion-sub001/internal/domain/model"
)

type ContactRepo struct {
	pool *pgxpool.Pool
}

func NewContactRepo(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

func (r *ContactRepo) CreateMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if r.pool == nil {
		return model.ContactMessage{}, fmt.Errorf("postgres pool is nil")
	}

	err := r.pool.QueryRow(ctx, `
INSERT INTO contact_messages (name, email, phone, message, created_at)
VALUES ($1, $2, $3, $4, NOW())
RETURNING id, created_at
`, msg.Name, msg.Email, msg.Phone, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("insert contact message: %w", err)
	}

	return msg, nil
}

func (r *ContactRepo) ListMessages(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name, email, phone, message, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact messages: %w", err)
	}

	return items, nil
}
