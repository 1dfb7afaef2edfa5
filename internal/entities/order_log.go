package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OrderLogVariant string

const (
	OrderLogStatus        OrderLogVariant = "status"
	OrderLogCancel        OrderLogVariant = "cancel"
	OrderLogUpdateProduct OrderLogVariant = "updateProduct"
	OrderLogUpdate        OrderLogVariant = "update"
)

func (v OrderLogVariant) String() string {
	return string(v)
}

// LogUser - копия данных пользователя на момент записи журнала.
type LogUser struct {
	ID       uuid.UUID
	Name     string
	LastName string
	Email    string
	Phone    string
}

type OrderLog struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	UserID       uuid.UUID
	PrevStatusID uuid.UUID
	StatusID     uuid.UUID
	Variant      OrderLogVariant
	Diff         json.RawMessage
	Comment      *string
	User         LogUser
	CreatedAt    time.Time
}
