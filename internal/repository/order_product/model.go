package order_product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderProductDB struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ShopProductID uuid.UUID
	StatusID      uuid.UUID
	Amount        int64
	Price         decimal.Decimal
	TotalPrice    decimal.Decimal
	IsCanceled    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderProductModifyDB struct {
	ID         *uuid.UUID
	StatusID   *uuid.UUID
	Amount     *int64
	Price      *decimal.Decimal
	TotalPrice *decimal.Decimal
	IsCanceled *bool
}

type ShopProductDB struct {
	ID        uuid.UUID
	Available int64
}
