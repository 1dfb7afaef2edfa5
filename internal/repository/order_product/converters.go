package order_product

import "orders/internal/entities"

func ToDomain(p *OrderProductDB) *entities.OrderProduct {
	if p == nil {
		return nil
	}

	return &entities.OrderProduct{
		ID:            p.ID,
		OrderID:       p.OrderID,
		ShopProductID: p.ShopProductID,
		StatusID:      p.StatusID,
		Amount:        p.Amount,
		Price:         p.Price,
		TotalPrice:    p.TotalPrice,
		IsCanceled:    p.IsCanceled,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToDomainList(productsDB []OrderProductDB) []entities.OrderProduct {
	if len(productsDB) == 0 {
		return []entities.OrderProduct{}
	}

	result := make([]entities.OrderProduct, len(productsDB))
	for i := range productsDB {
		result[i] = *ToDomain(&productsDB[i])
	}
	return result
}

func FromDomainModify(productModify *entities.OrderProductModify) *OrderProductModifyDB {
	if productModify == nil {
		return nil
	}

	return &OrderProductModifyDB{
		ID:         productModify.ID,
		StatusID:   productModify.StatusID,
		Amount:     productModify.Amount,
		Price:      productModify.Price,
		TotalPrice: productModify.TotalPrice,
		IsCanceled: productModify.IsCanceled,
	}
}

func ToShopProductDomain(s *ShopProductDB) *entities.ShopProduct {
	if s == nil {
		return nil
	}

	return &entities.ShopProduct{
		ID:        s.ID,
		Available: s.Available,
	}
}
