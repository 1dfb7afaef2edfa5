package order

import (
	"context"
	"encoding/json"
	"fmt"

	"orders/internal/entities"
	"orders/pkg/diff"
)

// UpdateOrderProduct меняет количество одной позиции. amount и totalPrice
// пишутся одним запросом, сумма заказа пересчитывается.
func (s *Service) UpdateOrderProduct(ctx context.Context, input UpdateOrderProductInput) Payload {
	if !isValidID(input.OrderProductID) {
		return s.invalid(ctx, opUpdateOrderProduct, ErrInvalidInput)
	}
	if !isValidAmount(input.Amount) {
		return s.invalid(ctx, opUpdateOrderProduct, ErrInvalidAmount)
	}

	return s.handle(ctx, opUpdateOrderProduct, input.OrderProductID, func(ctx context.Context, user entities.Identity, result *Payload) error {
		product, err := s.products.GetByID(ctx, input.OrderProductID)
		if err != nil {
			return fmt.Errorf("get order product: %w", err)
		}

		order, err := s.orders.GetByIDForUpdate(ctx, product.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		next := *product
		next.Amount = input.Amount
		next.TotalPrice = entities.CalculateTotal(product.Price, input.Amount)

		if err := s.checkStock(ctx, next); err != nil {
			return err
		}

		rawDiff, err := amountDiff(*product, next)
		if err != nil {
			return err
		}

		err = s.writeLog(ctx, entities.OrderLog{
			OrderID:      order.ID,
			UserID:       user.ID,
			PrevStatusID: order.StatusID,
			StatusID:     order.StatusID,
			Variant:      entities.OrderLogUpdateProduct,
			Diff:         rawDiff,
			User:         user.LogUser(),
		})
		if err != nil {
			return err
		}

		if _, err := s.products.UpdateAmount(ctx, product.ID, next.Amount, next.TotalPrice); err != nil {
			return fmt.Errorf("update order product amount: %w", err)
		}

		result.Order, err = s.recalculateTotal(ctx, order)
		return err
	})
}

func amountDiff(prev, next entities.OrderProduct) (json.RawMessage, error) {
	line := func(p entities.OrderProduct) amountSnapshot {
		return amountSnapshot{Products: map[string]amountLine{
			p.ID.String(): {Amount: p.Amount, TotalPrice: p.TotalPrice.String()},
		}}
	}

	prevSnapshot, err := diff.Snapshot(line(prev))
	if err != nil {
		return nil, fmt.Errorf("snapshot order product: %w", err)
	}
	nextSnapshot, err := diff.Snapshot(line(next))
	if err != nil {
		return nil, fmt.Errorf("snapshot order product: %w", err)
	}

	raw, err := json.Marshal(diff.Compute(prevSnapshot, nextSnapshot))
	if err != nil {
		return nil, fmt.Errorf("marshal order product diff: %w", err)
	}
	return raw, nil
}

// recalculateTotal пишет в заказ сумму неотменённых позиций, если она изменилась.
func (s *Service) recalculateTotal(ctx context.Context, order *entities.Order) (*entities.OrderAggregate, error) {
	aggregate, err := s.loadAggregate(ctx, order)
	if err != nil {
		return nil, err
	}

	total := aggregate.ActiveTotal()
	if total.Equal(order.TotalPrice) {
		return aggregate, nil
	}

	updated, err := s.orders.Update(ctx, entities.OrderModify{
		ID:         &order.ID,
		TotalPrice: &total,
	})
	if err != nil {
		return nil, fmt.Errorf("update order total: %w", err)
	}

	aggregate.Order = *updated
	return aggregate, nil
}
