package order_status

import "github.com/google/uuid"

type OrderStatusDB struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	Color     string
	SortIndex int
}
