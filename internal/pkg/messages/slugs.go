package messages

// Ключи сообщений, которые сервис заказов отдаёт клиентам.
const (
	InvalidInput          = "orders.invalidInput"
	InvalidAmount         = "orders.invalidAmount"
	InvalidPrice          = "orders.invalidPrice"
	NotEnoughStock        = "orders.notEnoughStock"
	OrderNotFound         = "orders.orderNotFound"
	OrderProductNotFound  = "orders.orderProductNotFound"
	OrderStatusNotFound   = "orders.orderStatusNotFound"
	ShopProductNotFound   = "orders.shopProductNotFound"
	PermissionUnavailable = "orders.permissionUnavailable"
	RateLimited           = "orders.rateLimited"
)

// Success и Failure - общие сообщения операции, например
// "cancelOrder.success" / "cancelOrder.error".
func Success(operation string) string {
	return operation + ".success"
}

func Failure(operation string) string {
	return operation + ".error"
}
