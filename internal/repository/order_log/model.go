package order_log

import (
	"time"

	"github.com/google/uuid"
)

type OrderLogDB struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	UserID       uuid.NullUUID
	PrevStatusID uuid.UUID
	StatusID     uuid.UUID
	Variant      string
	Diff         []byte
	Comment      *string
	UserName     string
	UserLastName string
	UserEmail    string
	UserPhone    string
	CreatedAt    time.Time
}
