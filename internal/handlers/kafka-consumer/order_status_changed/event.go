package order_status_changed

import "github.com/google/uuid"

// statusChangedEvent - событие смены статуса от внешних систем (доставка, оплата).
// Token - токен, от имени которого система меняет заказ.
type statusChangedEvent struct {
	OrderID uuid.UUID `json:"order_id"`
	Status  string    `json:"status"`
	Token   string    `json:"token"`
	Comment *string   `json:"comment,omitempty"`
	Locale  string    `json:"locale,omitempty"`
}
