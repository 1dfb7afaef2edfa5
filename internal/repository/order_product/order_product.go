package order_product

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"orders/internal/entities"
	"orders/internal/repository"
	"orders/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const productColumns = `id, order_id, shop_product_id, status_id, amount, price, total_price, is_canceled, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.OrderProduct, error) {
	query := `SELECT ` + productColumns + `
		FROM order_products
		WHERE id = $1`

	var productModel OrderProductDB
	err := scanProduct(r.querier.QueryRow(ctx, query, id), &productModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderProductNotFound
		}
		return nil, fmt.Errorf("unexpected order product repository getbyid error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]entities.OrderProduct, error) {
	query := `SELECT ` + productColumns + `
		FROM order_products
		WHERE order_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order product repository getbyorderid error: %w", err)
	}
	defer rows.Close()

	// в заказе обычно немного позиций
	productModels := make([]OrderProductDB, 0, 8)
	for rows.Next() {
		var productModel OrderProductDB
		if err := scanProduct(rows, &productModel); err != nil {
			return nil, fmt.Errorf("unexpected order product repository scan error: %w", err)
		}
		productModels = append(productModels, productModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order product repository rows error: %w", err)
	}

	return ToDomainList(productModels), nil
}

func (r *Repository) Update(ctx context.Context, productModifyEntity entities.OrderProductModify) (*entities.OrderProduct, error) {
	productModifyModel := FromDomainModify(&productModifyEntity)
	if productModifyModel.ID == nil {
		return nil, fmt.Errorf("order product repository update: %w", order.ErrInvalidInput)
	}

	builder := qb.
		Update("order_products")

	// опциональные поля
	if productModifyModel.StatusID != nil {
		builder = builder.Set("status_id", *productModifyModel.StatusID)
	}
	if productModifyModel.Amount != nil {
		builder = builder.Set("amount", *productModifyModel.Amount)
	}
	if productModifyModel.Price != nil {
		builder = builder.Set("price", *productModifyModel.Price)
	}
	if productModifyModel.TotalPrice != nil {
		builder = builder.Set("total_price", *productModifyModel.TotalPrice)
	}
	if productModifyModel.IsCanceled != nil {
		builder = builder.Set("is_canceled", *productModifyModel.IsCanceled)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *productModifyModel.ID}).
		Suffix("RETURNING " + productColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order product repository update error: %w", err)
	}

	return r.updateOne(ctx, query, args...)
}

// UpdateAmount пишет количество и итоговую стоимость одним UPDATE.
func (r *Repository) UpdateAmount(ctx context.Context, id uuid.UUID, amount int64, totalPrice decimal.Decimal) (*entities.OrderProduct, error) {
	query := `UPDATE order_products
		SET amount = $2, total_price = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	return r.updateOne(ctx, query, id, amount, totalPrice)
}

func (r *Repository) updateOne(ctx context.Context, query string, args ...any) (*entities.OrderProduct, error) {
	var productModel OrderProductDB
	err := scanProduct(r.querier.QueryRow(ctx, query, args...), &productModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrWriteFailed
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %v", order.ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("unexpected order product repository update error: %w", err)
	}

	return ToDomain(&productModel), nil
}

func (r *Repository) CancelByOrderID(ctx context.Context, orderID, statusID uuid.UUID) (int64, error) {
	query := `UPDATE order_products
		SET is_canceled = TRUE, status_id = $2, updated_at = NOW()
		WHERE order_id = $1`

	result, err := r.querier.Exec(ctx, query, orderID, statusID)
	if err != nil {
		return 0, fmt.Errorf("unexpected order product repository cancel error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) DeleteByOrderID(ctx context.Context, orderID uuid.UUID) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM order_products WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order product repository delete error: %w", err)
	}
	return nil
}

func (r *Repository) GetShopProduct(ctx context.Context, id uuid.UUID) (*entities.ShopProduct, error) {
	query := `SELECT id, available
		FROM shop_products
		WHERE id = $1`

	var shopProductModel ShopProductDB
	err := r.querier.QueryRow(ctx, query, id).Scan(&shopProductModel.ID, &shopProductModel.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrShopProductNotFound
		}
		return nil, fmt.Errorf("unexpected order product repository get shop product error: %w", err)
	}

	return ToShopProductDomain(&shopProductModel), nil
}

func scanProduct(row pgx.Row, p *OrderProductDB) error {
	return row.Scan(
		&p.ID,
		&p.OrderID,
		&p.ShopProductID,
		&p.StatusID,
		&p.Amount,
		&p.Price,
		&p.TotalPrice,
		&p.IsCanceled,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}
