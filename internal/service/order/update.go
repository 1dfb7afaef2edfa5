package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"orders/internal/entities"
	"orders/pkg/diff"
)

type updatePlan struct {
	statusID uuid.UUID
	order    entities.OrderModify
	customer entities.OrderCustomerModify
	products []entities.OrderProductModify
}

// UpdateOrder сверяет присланное клиентом представление заказа с текущим
// состоянием из БД и применяет только то, что попало в diff.
// Возвращается заказ, перечитанный после записи.
func (s *Service) UpdateOrder(ctx context.Context, input UpdateOrderInput) Payload {
	if err := validateOrderUpdate(input.Order); err != nil {
		return s.invalid(ctx, opUpdateOrder, err)
	}

	orderID := input.Order.OrderID
	return s.handle(ctx, opUpdateOrder, orderID, func(ctx context.Context, user entities.Identity, result *Payload) error {
		order, err := s.orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		prev, err := s.loadAggregate(ctx, order)
		if err != nil {
			return err
		}

		prevSnapshot, err := diff.Snapshot(snapshotOfAggregate(prev))
		if err != nil {
			return fmt.Errorf("snapshot current order: %w", err)
		}
		nextSnapshot, err := diff.Snapshot(snapshotOfUpdate(input.Order, prev))
		if err != nil {
			return fmt.Errorf("snapshot order update: %w", err)
		}

		changes := diff.Compute(prevSnapshot, nextSnapshot)

		plan, err := s.planUpdate(ctx, prev, changes)
		if err != nil {
			return err
		}

		rawDiff, err := json.Marshal(changes)
		if err != nil {
			return fmt.Errorf("marshal order diff: %w", err)
		}

		err = s.writeLog(ctx, entities.OrderLog{
			OrderID:      order.ID,
			UserID:       user.ID,
			PrevStatusID: order.StatusID,
			StatusID:     plan.statusID,
			Variant:      entities.OrderLogUpdate,
			Diff:         rawDiff,
			User:         user.LogUser(),
		})
		if err != nil {
			return err
		}

		if err := s.applyUpdate(ctx, plan); err != nil {
			return err
		}

		result.Order, err = s.reloadAggregate(ctx, order.ID)
		return err
	})
}

func (s *Service) planUpdate(ctx context.Context, prev *entities.OrderAggregate, changes diff.Diff) (updatePlan, error) {
	plan := updatePlan{
		statusID: prev.Order.StatusID,
		order:    entities.OrderModify{ID: &prev.Order.ID},
	}

	if value, ok := changes.Updated("statusId"); ok {
		statusID, err := parseUUID(value)
		if err != nil {
			return plan, fmt.Errorf("order statusId: %w", err)
		}
		status, err := s.statuses.GetByID(ctx, statusID)
		if err != nil {
			return plan, fmt.Errorf("get order status: %w", err)
		}
		plan.statusID = status.ID
		plan.order.StatusID = &plan.statusID
	}

	customer, err := customerModifyFromPatch(prev.Order.ID, changes.Fields("customer"))
	if err != nil {
		return plan, err
	}
	if !customer.IsEmpty() && prev.Customer == nil {
		return plan, fmt.Errorf("%w: order has no customer", ErrInvalidInput)
	}
	plan.customer = customer

	byID := make(map[string]int, len(prev.Products))
	after := make([]entities.OrderProduct, len(prev.Products))
	for i, p := range prev.Products {
		byID[p.ID.String()] = i
		after[i] = p
	}

	patches := changes.Patch("products")
	for _, id := range sortedKeys(patches) {
		idx, ok := byID[id]
		if !ok {
			return plan, fmt.Errorf("%w: %s", ErrOrderProductNotFound, id)
		}

		modify, patched, err := patchProduct(after[idx], patches[id])
		if err != nil {
			return plan, err
		}

		if modify.Amount != nil {
			if err := s.checkStock(ctx, patched); err != nil {
				return plan, err
			}
		}

		after[idx] = patched
		plan.products = append(plan.products, modify)
	}

	if len(plan.products) > 0 {
		total := entities.OrderAggregate{Products: after}.ActiveTotal()
		if !total.Equal(prev.Order.TotalPrice) {
			plan.order.TotalPrice = &total
		}
	}
	return plan, nil
}

func (s *Service) applyUpdate(ctx context.Context, plan updatePlan) error {
	if plan.order.StatusID != nil || plan.order.TotalPrice != nil {
		if _, err := s.orders.Update(ctx, plan.order); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
	}

	if !plan.customer.IsEmpty() {
		if _, err := s.orders.UpdateCustomer(ctx, plan.customer); err != nil {
			return fmt.Errorf("update order customer: %w", err)
		}
	}

	for _, modify := range plan.products {
		if _, err := s.products.Update(ctx, modify); err != nil {
			return fmt.Errorf("update order product %s: %w", modify.ID, err)
		}
	}
	return nil
}

func (s *Service) checkStock(ctx context.Context, product entities.OrderProduct) error {
	shopProduct, err := s.products.GetShopProduct(ctx, product.ShopProductID)
	if err != nil {
		return fmt.Errorf("get shop product: %w", err)
	}

	if product.Amount > shopProduct.Available {
		return fmt.Errorf("%w: requested %d, available %d", ErrNotEnoughStock, product.Amount, shopProduct.Available)
	}
	return nil
}
