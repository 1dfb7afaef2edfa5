package order

import (
	"context"
	"fmt"

	"orders/internal/entities"
)

// CancelOrder переводит заказ и все его позиции в статус canceled.
// Повторная отмена снова пишет запись в журнал.
func (s *Service) CancelOrder(ctx context.Context, input CancelOrderInput) Payload {
	if !isValidID(input.OrderID) {
		return s.invalid(ctx, opCancelOrder, ErrInvalidInput)
	}

	return s.handle(ctx, opCancelOrder, input.OrderID, func(ctx context.Context, user entities.Identity, result *Payload) error {
		order, err := s.orders.GetByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		canceled, err := s.statuses.GetBySlug(ctx, entities.OrderStatusCanceled)
		if err != nil {
			return fmt.Errorf("get canceled status: %w", err)
		}

		aggregate, err := s.cancel(ctx, user, order, canceled, input.Comment)
		if err != nil {
			return err
		}

		result.Order = aggregate
		return nil
	})
}

func (s *Service) cancel(
	ctx context.Context,
	user entities.Identity,
	order *entities.Order,
	canceled *entities.OrderStatus,
	comment *string,
) (*entities.OrderAggregate, error) {
	err := s.writeLog(ctx, entities.OrderLog{
		OrderID:      order.ID,
		UserID:       user.ID,
		PrevStatusID: order.StatusID,
		StatusID:     canceled.ID,
		Variant:      entities.OrderLogCancel,
		Comment:      comment,
		User:         user.LogUser(),
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.orders.Update(ctx, entities.OrderModify{
		ID:       &order.ID,
		StatusID: &canceled.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if _, err := s.products.CancelByOrderID(ctx, order.ID, canceled.ID); err != nil {
		return nil, fmt.Errorf("cancel order products: %w", err)
	}

	return s.loadAggregate(ctx, updated)
}
