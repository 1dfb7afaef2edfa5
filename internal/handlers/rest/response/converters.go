package response

import (
	"encoding/json"

	"github.com/google/uuid"
	"orders/internal/entities"
	"orders/internal/generated/dto"
	"orders/internal/service/order"
)

func OrderResponse(payload order.Payload) dto.OrderResponse {
	res := dto.OrderResponse{
		Success: payload.Success,
		Message: payload.Message,
	}
	if payload.Success && payload.Order != nil {
		res.Payload = toOrder(payload.Order)
	}
	return res
}

func OrderLogsResponse(payload order.Payload) dto.OrderLogsResponse {
	res := dto.OrderLogsResponse{
		Success: payload.Success,
		Message: payload.Message,
	}
	if payload.Success {
		logs := make([]dto.OrderLog, 0, len(payload.Logs))
		for _, l := range payload.Logs {
			logs = append(logs, toOrderLog(l))
		}
		res.Payload = &logs
	}
	return res
}

func OrderStatusesResponse(payload order.Payload) dto.OrderStatusesResponse {
	res := dto.OrderStatusesResponse{
		Success: payload.Success,
		Message: payload.Message,
	}
	if payload.Success {
		statuses := make([]dto.OrderStatus, 0, len(payload.Statuses))
		for _, s := range payload.Statuses {
			statuses = append(statuses, toOrderStatus(s))
		}
		res.Payload = &statuses
	}
	return res
}

func ResultResponse(payload order.Payload) dto.ResultResponse {
	return dto.ResultResponse{
		Success: payload.Success,
		Message: payload.Message,
	}
}

func toOrder(a *entities.OrderAggregate) *dto.Order {
	products := make([]dto.OrderProduct, 0, len(a.Products))
	for _, p := range a.Products {
		products = append(products, dto.OrderProduct{
			ID:            p.ID.String(),
			ShopProductID: p.ShopProductID.String(),
			StatusID:      p.StatusID.String(),
			Amount:        p.Amount,
			Price:         p.Price.String(),
			TotalPrice:    p.TotalPrice.String(),
			IsCanceled:    p.IsCanceled,
		})
	}

	res := &dto.Order{
		ID:         a.Order.ID.String(),
		ItemID:     a.Order.ItemID,
		ShopID:     a.Order.ShopID.String(),
		CompanyID:  a.Order.CompanyID.String(),
		CustomerID: optionalID(a.Order.CustomerID),
		StatusID:   a.Order.StatusID.String(),
		Status:     toOrderStatus(a.Status),
		TotalPrice: a.Order.TotalPrice.String(),
		Products:   products,
		CreatedAt:  a.Order.CreatedAt,
		UpdatedAt:  a.Order.UpdatedAt,
	}

	if c := a.Customer; c != nil {
		res.Customer = &dto.OrderCustomer{
			ID:       c.ID.String(),
			UserID:   optionalID(c.UserID),
			Name:     c.Name,
			LastName: c.LastName,
			Email:    c.Email,
			Phone:    c.Phone,
		}
	}
	return res
}

func toOrderStatus(s entities.OrderStatus) dto.OrderStatus {
	return dto.OrderStatus{
		ID:    s.ID.String(),
		Slug:  s.Slug.String(),
		Name:  s.Name,
		Color: s.Color,
		Index: s.Index,
	}
}

func toOrderLog(l entities.OrderLog) dto.OrderLog {
	res := dto.OrderLog{
		ID:           l.ID.String(),
		OrderID:      l.OrderID.String(),
		PrevStatusID: l.PrevStatusID.String(),
		StatusID:     l.StatusID.String(),
		Variant:      dto.OrderLogVariant(l.Variant),
		Comment:      l.Comment,
		CreatedAt:    l.CreatedAt,
		User: dto.OrderLogUser{
			ID:       optionalID(l.User.ID),
			Name:     l.User.Name,
			LastName: l.User.LastName,
			Email:    l.User.Email,
			Phone:    l.User.Phone,
		},
	}

	if len(l.Diff) > 0 {
		var diff map[string]interface{}
		// diff пишется сервисом, невалидный JSON в журнале просто не отдаём
		if err := json.Unmarshal(l.Diff, &diff); err == nil && diff != nil {
			res.Diff = &diff
		}
	}
	return res
}

func optionalID(id uuid.UUID) *string {
	if id == uuid.Nil {
		return nil
	}
	s := id.String()
	return &s
}
