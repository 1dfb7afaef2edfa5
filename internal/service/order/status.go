package order

import (
	"context"
	"fmt"

	"orders/internal/entities"
)

// SetOrderStatus меняет только статус заказа. Переход в canceled
// выполняется как отмена: позиции тоже помечаются отменёнными.
func (s *Service) SetOrderStatus(ctx context.Context, input SetOrderStatusInput) Payload {
	if err := validateStatusTarget(input); err != nil {
		return s.invalid(ctx, opUpdateOrderStatus, err)
	}

	return s.handle(ctx, opUpdateOrderStatus, input.OrderID, func(ctx context.Context, user entities.Identity, result *Payload) error {
		order, err := s.orders.GetByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		target, err := s.resolveStatus(ctx, input)
		if err != nil {
			return fmt.Errorf("get target status: %w", err)
		}

		if target.Slug == entities.OrderStatusCanceled {
			result.Order, err = s.cancel(ctx, user, order, target, input.Comment)
			return err
		}

		err = s.writeLog(ctx, entities.OrderLog{
			OrderID:      order.ID,
			UserID:       user.ID,
			PrevStatusID: order.StatusID,
			StatusID:     target.ID,
			Variant:      entities.OrderLogStatus,
			Comment:      input.Comment,
			User:         user.LogUser(),
		})
		if err != nil {
			return err
		}

		updated, err := s.orders.Update(ctx, entities.OrderModify{
			ID:       &order.ID,
			StatusID: &target.ID,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		result.Order, err = s.loadAggregate(ctx, updated)
		return err
	})
}

func (s *Service) resolveStatus(ctx context.Context, input SetOrderStatusInput) (*entities.OrderStatus, error) {
	if isValidID(input.StatusID) {
		return s.statuses.GetByID(ctx, input.StatusID)
	}
	return s.statuses.GetBySlug(ctx, input.StatusSlug)
}
