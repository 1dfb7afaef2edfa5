package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderProduct struct {
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

// CalculateTotal - стоимость позиции: цена за единицу * количество.
func CalculateTotal(price decimal.Decimal, amount int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(amount))
}

type OrderProductModify struct {
	ID         *uuid.UUID
	StatusID   *uuid.UUID
	Amount     *int64
	Price      *decimal.Decimal
	TotalPrice *decimal.Decimal
	IsCanceled *bool
}

type ShopProduct struct {
	ID        uuid.UUID
	Available int64
}
