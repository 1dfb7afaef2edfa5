package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"orders/internal/entities"
)

// priceScale - знаков после запятой у price и total_price в базе.
const priceScale = 2

func isValidID(id uuid.UUID) bool {
	return id != uuid.Nil
}

func isValidAmount(amount int64) bool {
	return amount > 0
}

// isValidPrice: цена неотрицательна и влезает в NUMERIC(14,2) без округления.
// "10.50" подходит, "10.005" нет.
func isValidPrice(price decimal.Decimal) bool {
	return !price.IsNegative() && price.Equal(price.Truncate(priceScale))
}

func validateOrderUpdate(update entities.OrderUpdate) error {
	if !isValidID(update.OrderID) || !isValidID(update.StatusID) {
		return ErrInvalidInput
	}

	seen := make(map[uuid.UUID]struct{}, len(update.Products))
	for _, p := range update.Products {
		if !isValidID(p.ID) || !isValidID(p.StatusID) {
			return ErrInvalidInput
		}
		if _, dup := seen[p.ID]; dup {
			return ErrInvalidInput
		}
		seen[p.ID] = struct{}{}

		if !isValidAmount(p.Amount) {
			return ErrInvalidAmount
		}
		if !isValidPrice(p.Price) {
			return ErrInvalidPrice
		}
	}
	return nil
}

func validateStatusTarget(input SetOrderStatusInput) error {
	if !isValidID(input.OrderID) {
		return ErrInvalidInput
	}
	if isValidID(input.StatusID) {
		return nil
	}
	if !input.StatusSlug.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
