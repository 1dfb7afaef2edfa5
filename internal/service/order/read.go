package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"orders/internal/entities"
)

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID) Payload {
	if !isValidID(orderID) {
		return s.invalid(ctx, opGetOrder, ErrInvalidInput)
	}

	return s.handle(ctx, opGetOrder, orderID, func(ctx context.Context, _ entities.Identity, result *Payload) error {
		var err error
		result.Order, err = s.reloadAggregate(ctx, orderID)
		return err
	})
}

func (s *Service) GetOrderLogs(ctx context.Context, orderID uuid.UUID) Payload {
	if !isValidID(orderID) {
		return s.invalid(ctx, opGetOrderLogs, ErrInvalidInput)
	}

	return s.handle(ctx, opGetOrderLogs, orderID, func(ctx context.Context, _ entities.Identity, result *Payload) error {
		if _, err := s.orders.GetByID(ctx, orderID); err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		logs, err := s.logs.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order logs: %w", err)
		}
		result.Logs = logs
		return nil
	})
}

// GetOrderStatuses - справочник статусов, права не проверяются.
func (s *Service) GetOrderStatuses(ctx context.Context) Payload {
	return s.handle(ctx, opGetOrderStatuses, uuid.Nil, func(ctx context.Context, _ entities.Identity, result *Payload) error {
		statuses, err := s.statuses.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("get order statuses: %w", err)
		}
		result.Statuses = statuses
		return nil
	})
}
