package order

import "orders/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:         o.ID,
		ItemID:     o.ItemID,
		ShopID:     o.ShopID,
		CompanyID:  o.CompanyID,
		CustomerID: o.CustomerID.UUID,
		StatusID:   o.StatusID,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	return &OrderModifyDB{
		ID:         orderModify.ID,
		StatusID:   orderModify.StatusID,
		TotalPrice: orderModify.TotalPrice,
	}
}

func ToCustomerDomain(c *OrderCustomerDB) *entities.OrderCustomer {
	if c == nil {
		return nil
	}

	return &entities.OrderCustomer{
		ID:       c.ID,
		OrderID:  c.OrderID,
		UserID:   c.UserID.UUID,
		Name:     c.Name,
		LastName: c.LastName,
		Email:    c.Email,
		Phone:    c.Phone,
	}
}

func FromCustomerDomainModify(customerModify *entities.OrderCustomerModify) *OrderCustomerModifyDB {
	if customerModify == nil {
		return nil
	}

	return &OrderCustomerModifyDB{
		OrderID:  customerModify.OrderID,
		Name:     customerModify.Name,
		LastName: customerModify.LastName,
		Email:    customerModify.Email,
		Phone:    customerModify.Phone,
	}
}
