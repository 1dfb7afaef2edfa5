package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderUpdate - полное клиентское представление заказа для updateOrder.
// Позиции адресуются по id, а не по порядку в списке.
type OrderUpdate struct {
	OrderID  uuid.UUID
	StatusID uuid.UUID
	Customer *OrderCustomerUpdate
	Products []OrderProductUpdate
}

type OrderCustomerUpdate struct {
	Name     string
	LastName string
	Email    string
	Phone    string
}

type OrderProductUpdate struct {
	ID         uuid.UUID
	StatusID   uuid.UUID
	Amount     int64
	Price      decimal.Decimal
	IsCanceled bool
}
