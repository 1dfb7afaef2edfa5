package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"orders/internal/entities"
	"orders/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, item_id, shop_id, company_id, customer_id, status_id, total_price, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate блокирует строку заказа до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query string, id uuid.UUID) (*entities.Order, error) {
	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	if orderModifyModel.ID == nil {
		return nil, fmt.Errorf("order repository update: %w", order.ErrInvalidInput)
	}

	builder := qb.
		Update("orders")

	if orderModifyModel.StatusID != nil {
		builder = builder.Set("status_id", *orderModifyModel.StatusID)
	}
	if orderModifyModel.TotalPrice != nil {
		builder = builder.Set("total_price", *orderModifyModel.TotalPrice)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		// заказ уже прочитан в этой транзакции, пустой RETURNING - это несостоявшаяся запись
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrWriteFailed
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrWriteFailed
	}
	return nil
}

// GetCustomer возвращает nil без ошибки, если у заказа нет покупателя.
func (r *Repository) GetCustomer(ctx context.Context, orderID uuid.UUID) (*entities.OrderCustomer, error) {
	query := `SELECT id, order_id, user_id, name, last_name, email, phone
		FROM order_customers
		WHERE order_id = $1`

	var customerModel OrderCustomerDB
	err := scanCustomer(r.querier.QueryRow(ctx, query, orderID), &customerModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository get customer error: %w", err)
	}

	return ToCustomerDomain(&customerModel), nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, customerModifyEntity entities.OrderCustomerModify) (*entities.OrderCustomer, error) {
	customerModifyModel := FromCustomerDomainModify(&customerModifyEntity)
	if customerModifyModel.OrderID == nil {
		return nil, fmt.Errorf("order repository update customer: %w", order.ErrInvalidInput)
	}

	builder := qb.
		Update("order_customers")

	// опциональные поля
	if customerModifyModel.Name != nil {
		builder = builder.Set("name", *customerModifyModel.Name)
	}
	if customerModifyModel.LastName != nil {
		builder = builder.Set("last_name", *customerModifyModel.LastName)
	}
	if customerModifyModel.Email != nil {
		builder = builder.Set("email", *customerModifyModel.Email)
	}
	if customerModifyModel.Phone != nil {
		builder = builder.Set("phone", *customerModifyModel.Phone)
	}

	builder = builder.
		Where(sq.Eq{"order_id": *customerModifyModel.OrderID}).
		Suffix("RETURNING id, order_id, user_id, name, last_name, email, phone")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update customer error: %w", err)
	}

	var customerModel OrderCustomerDB
	err = scanCustomer(r.querier.QueryRow(ctx, query, args...), &customerModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrWriteFailed
		}
		return nil, fmt.Errorf("unexpected order repository update customer error: %w", err)
	}

	return ToCustomerDomain(&customerModel), nil
}

func (r *Repository) DeleteCustomers(ctx context.Context, orderID uuid.UUID) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM order_customers WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete customers error: %w", err)
	}
	return nil
}

// CountByStatus - количество заказов по slug статуса, для метрик.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusSlug]int64, error) {
	query := `
	SELECT s.slug, COUNT(o.id)
	FROM order_statuses s
	LEFT JOIN orders o ON o.status_id = s.id
	GROUP BY s.slug`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusSlug]int64, 4)
	for rows.Next() {
		var (
			slug  string
			count int64
		)
		if err := rows.Scan(&slug, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count scan error: %w", err)
		}
		counts[entities.OrderStatusSlug(slug)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository count rows error: %w", err)
	}
	return counts, nil
}

func scanOrder(row pgx.Row, o *OrderDB) error {
	return row.Scan(
		&o.ID,
		&o.ItemID,
		&o.ShopID,
		&o.CompanyID,
		&o.CustomerID,
		&o.StatusID,
		&o.TotalPrice,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
}

func scanCustomer(row pgx.Row, c *OrderCustomerDB) error {
	return row.Scan(
		&c.ID,
		&c.OrderID,
		&c.UserID,
		&c.Name,
		&c.LastName,
		&c.Email,
		&c.Phone,
	)
}
