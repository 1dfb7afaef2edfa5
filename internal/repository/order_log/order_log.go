package order_log

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"orders/internal/entities"
	"orders/internal/repository"
	"orders/internal/service/order"
)

const logColumns = `id, order_id, user_id, prev_status_id, status_id, variant, diff, comment,
	user_name, user_last_name, user_email, user_phone, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create добавляет запись в журнал. Записи журнала не изменяются.
func (r *Repository) Create(ctx context.Context, orderLog entities.OrderLog) (*entities.OrderLog, error) {
	logModel := FromDomain(&orderLog)

	query := `
		INSERT INTO order_logs (order_id, user_id, prev_status_id, status_id, variant, diff, comment,
			user_name, user_last_name, user_email, user_phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + logColumns

	var created OrderLogDB
	err := scanLog(r.querier.QueryRow(
		ctx,
		query,
		logModel.OrderID,
		logModel.UserID,
		logModel.PrevStatusID,
		logModel.StatusID,
		logModel.Variant,
		logModel.Diff,
		logModel.Comment,
		logModel.UserName,
		logModel.UserLastName,
		logModel.UserEmail,
		logModel.UserPhone,
	), &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrWriteFailed
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order log repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.OrderLog, error) {
	query := `SELECT ` + logColumns + `
		FROM order_logs
		WHERE order_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order log repository getbyorderid error: %w", err)
	}
	defer rows.Close()

	logModels := make([]OrderLogDB, 0, 8)
	for rows.Next() {
		var logModel OrderLogDB
		if err := scanLog(rows, &logModel); err != nil {
			return nil, fmt.Errorf("unexpected order log repository scan error: %w", err)
		}
		logModels = append(logModels, logModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order log repository rows error: %w", err)
	}

	return ToDomainList(logModels), nil
}

func (r *Repository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM order_logs WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order log repository delete error: %w", err)
	}
	return nil
}

func scanLog(row pgx.Row, l *OrderLogDB) error {
	return row.Scan(
		&l.ID,
		&l.OrderID,
		&l.UserID,
		&l.PrevStatusID,
		&l.StatusID,
		&l.Variant,
		&l.Diff,
		&l.Comment,
		&l.UserName,
		&l.UserLastName,
		&l.UserEmail,
		&l.UserPhone,
		&l.CreatedAt,
	)
}
