package order_status

import "orders/internal/entities"

func ToDomain(s *OrderStatusDB) *entities.OrderStatus {
	if s == nil {
		return nil
	}

	return &entities.OrderStatus{
		ID:    s.ID,
		Slug:  entities.OrderStatusSlug(s.Slug),
		Name:  s.Name,
		Color: s.Color,
		Index: s.SortIndex,
	}
}

func ToDomainList(statusesDB []OrderStatusDB) []entities.OrderStatus {
	result := make([]entities.OrderStatus, len(statusesDB))
	for i := range statusesDB {
		result[i] = *ToDomain(&statusesDB[i])
	}
	return result
}
