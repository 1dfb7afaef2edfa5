package order

import (
	"context"
	"fmt"

	"orders/internal/entities"
)

// DeleteOrder безвозвратно удаляет заказ вместе с позициями, покупателем и
// журналом. Либо удаляется всё, либо ничего.
func (s *Service) DeleteOrder(ctx context.Context, input DeleteOrderInput) Payload {
	if !isValidID(input.OrderID) {
		return s.invalid(ctx, opDeleteOrder, ErrInvalidInput)
	}

	return s.handle(ctx, opDeleteOrder, input.OrderID, func(ctx context.Context, _ entities.Identity, _ *Payload) error {
		order, err := s.orders.GetByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := s.products.DeleteByOrderID(ctx, order.ID); err != nil {
			return fmt.Errorf("delete order products: %w", err)
		}

		if err := s.orders.DeleteCustomers(ctx, order.ID); err != nil {
			return fmt.Errorf("delete order customers: %w", err)
		}

		if err := s.logs.DeleteByOrderID(ctx, order.ID); err != nil {
			return fmt.Errorf("delete order logs: %w", err)
		}

		if err := s.orders.Delete(ctx, order.ID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}
