package order_put

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"orders/internal/entities"
	"orders/internal/generated/dto"
)

func toOrderUpdate(req dto.OrderUpdateRequest) (entities.OrderUpdate, error) {
	update := entities.OrderUpdate{
		OrderID:  uuid.MustParse(req.ID),
		StatusID: uuid.MustParse(req.StatusID),
		Products: make([]entities.OrderProductUpdate, 0, len(req.Products)),
	}

	if req.Customer != nil {
		update.Customer = &entities.OrderCustomerUpdate{
			Name:     req.Customer.Name,
			LastName: req.Customer.LastName,
			Email:    req.Customer.Email,
			Phone:    req.Customer.Phone,
		}
	}

	for _, p := range req.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return entities.OrderUpdate{}, fmt.Errorf("product %s price: %w", p.ID, err)
		}

		update.Products = append(update.Products, entities.OrderProductUpdate{
			ID:         uuid.MustParse(p.ID),
			StatusID:   uuid.MustParse(p.StatusID),
			Amount:     p.Amount,
			Price:      price,
			IsCanceled: p.IsCanceled,
		})
	}

	return update, nil
}
