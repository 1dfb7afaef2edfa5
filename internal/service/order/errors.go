package order

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPermissionDenied = errors.New("permission denied")

	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderProductNotFound = errors.New("order product not found")
	ErrOrderStatusNotFound  = errors.New("order status not found")
	ErrShopProductNotFound  = errors.New("shop product not found")

	ErrNotEnoughStock = errors.New("not enough stock")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidPrice   = errors.New("invalid price")

	ErrWriteFailed = errors.New("write failed")
	ErrInternal    = errors.New("internal error")
)
