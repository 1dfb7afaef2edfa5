package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uuid.UUID
	ItemID     int64
	ShopID     uuid.UUID
	CompanyID  uuid.UUID
	CustomerID uuid.UUID
	StatusID   uuid.UUID
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderModify struct {
	ID         *uuid.UUID
	StatusID   *uuid.UUID
	TotalPrice *decimal.Decimal
}

type OrderCustomer struct {
	ID       uuid.UUID
	OrderID  uuid.UUID
	UserID   uuid.UUID
	Name     string
	LastName string
	Email    string
	Phone    string
}

type OrderCustomerModify struct {
	OrderID  *uuid.UUID
	Name     *string
	LastName *string
	Email    *string
	Phone    *string
}

func (m OrderCustomerModify) IsEmpty() bool {
	return m.Name == nil && m.LastName == nil && m.Email == nil && m.Phone == nil
}

// OrderAggregate - заказ вместе со статусом, покупателем и позициями.
type OrderAggregate struct {
	Order    Order
	Status   OrderStatus
	Customer *OrderCustomer
	Products []OrderProduct
}

// ActiveTotal - сумма по неотменённым позициям.
func (a OrderAggregate) ActiveTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.Products {
		if p.IsCanceled {
			continue
		}
		total = total.Add(p.TotalPrice)
	}
	return total
}
