package order_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"orders/internal/entities"
	"orders/internal/service/order"
)

const statusColumns = `id, slug, name, color, sort_index`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.OrderStatus, error) {
	query := `SELECT ` + statusColumns + ` FROM order_statuses WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetBySlug(ctx context.Context, slug entities.OrderStatusSlug) (*entities.OrderStatus, error) {
	query := `SELECT ` + statusColumns + ` FROM order_statuses WHERE slug = $1`
	return r.getOne(ctx, query, slug.String())
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.OrderStatus, error) {
	query := `SELECT ` + statusColumns + ` FROM order_statuses ORDER BY sort_index, slug`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order status repository getall error: %w", err)
	}
	defer rows.Close()

	statusModels := make([]OrderStatusDB, 0, 4)
	for rows.Next() {
		var statusModel OrderStatusDB
		if err := scanStatus(rows, &statusModel); err != nil {
			return nil, fmt.Errorf("unexpected order status repository scan error: %w", err)
		}
		statusModels = append(statusModels, statusModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order status repository rows error: %w", err)
	}

	return ToDomainList(statusModels), nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg any) (*entities.OrderStatus, error) {
	var statusModel OrderStatusDB
	err := scanStatus(r.querier.QueryRow(ctx, query, arg), &statusModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderStatusNotFound
		}
		return nil, fmt.Errorf("unexpected order status repository get error: %w", err)
	}

	return ToDomain(&statusModel), nil
}

func scanStatus(row pgx.Row, s *OrderStatusDB) error {
	return row.Scan(&s.ID, &s.Slug, &s.Name, &s.Color, &s.SortIndex)
}
