package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID         uuid.UUID
	ItemID     int64
	ShopID     uuid.UUID
	CompanyID  uuid.UUID
	CustomerID uuid.NullUUID
	StatusID   uuid.UUID
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderModifyDB struct {
	ID         *uuid.UUID
	StatusID   *uuid.UUID
	TotalPrice *decimal.Decimal
}

type OrderCustomerDB struct {
	ID       uuid.UUID
	OrderID  uuid.UUID
	UserID   uuid.NullUUID
	Name     string
	LastName string
	Email    string
	Phone    string
}

type OrderCustomerModifyDB struct {
	OrderID  *uuid.UUID
	Name     *string
	LastName *string
	Email    *string
	Phone    *string
}
