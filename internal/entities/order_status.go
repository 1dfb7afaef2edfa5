package entities

import "github.com/google/uuid"

type OrderStatusSlug string

const (
	OrderStatusNew       OrderStatusSlug = "new"
	OrderStatusConfirmed OrderStatusSlug = "confirmed"
	OrderStatusDone      OrderStatusSlug = "done"
	OrderStatusCanceled  OrderStatusSlug = "canceled"
)

func (s OrderStatusSlug) String() string {
	return string(s)
}

func (s OrderStatusSlug) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusDone, OrderStatusCanceled:
		return true
	}
	return false
}

type OrderStatus struct {
	ID    uuid.UUID
	Slug  OrderStatusSlug
	Name  string
	Color string
	Index int
}
