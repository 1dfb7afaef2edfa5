package messages

const fallbackLocale = "en"

var defaults = map[string]string{
	InvalidInput:          "Invalid request data",
	InvalidAmount:         "Amount must be greater than zero",
	InvalidPrice:          "Price must be non-negative with at most 2 decimal places",
	NotEnoughStock:        "Not enough items in stock",
	OrderNotFound:         "Order not found",
	OrderProductNotFound:  "Order item not found",
	OrderStatusNotFound:   "Order status not found",
	ShopProductNotFound:   "Product not found",
	PermissionUnavailable: "Unable to verify permissions",
	RateLimited:           "Rate limit exceeded. Try again later.",

	"cancelOrder.success":        "Order canceled",
	"cancelOrder.error":          "Failed to cancel order",
	"deleteOrder.success":        "Order deleted",
	"deleteOrder.error":          "Failed to delete order",
	"updateOrder.success":        "Order updated",
	"updateOrder.error":          "Failed to update order",
	"updateOrderProduct.success": "Order item updated",
	"updateOrderProduct.error":   "Failed to update order item",
	"updateOrderStatus.success":  "Order status changed",
	"updateOrderStatus.error":    "Failed to change order status",
	"getOrder.success":           "Order loaded",
	"getOrder.error":             "Failed to load order",
	"getOrderLogs.success":       "Order history loaded",
	"getOrderLogs.error":         "Failed to load order history",
	"getOrderStatuses.success":   "Order statuses loaded",
	"getOrderStatuses.error":     "Failed to load order statuses",
}
