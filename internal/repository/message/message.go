package message

import (
	"context"
	"fmt"

	"orders/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Message, error) {
	rows, err := r.querier.Query(ctx, `SELECT slug, locale, value FROM messages ORDER BY slug, locale`)
	if err != nil {
		return nil, fmt.Errorf("unexpected message repository getall error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Message, 0, 32)
	for rows.Next() {
		var m entities.Message
		if err := rows.Scan(&m.Slug, &m.Locale, &m.Value); err != nil {
			return nil, fmt.Errorf("unexpected message repository scan error: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected message repository rows error: %w", err)
	}
	return result, nil
}
