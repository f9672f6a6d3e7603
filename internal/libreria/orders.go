package libreria

import "strings"

// Order fulfillment statuses as the backend reports them.
const (
	OrderPending   = "pendiente"
	OrderPaid      = "pagado"
	OrderShipped   = "enviado"
	OrderDelivered = "entregado"
	OrderCancelled = "cancelado"
)

// OrderStatuses is the fulfillment chain in progression order. Cancelled
// sits outside the chain.
var OrderStatuses = []string{OrderPending, OrderPaid, OrderShipped, OrderDelivered}

// NextOrderStatus returns the status after s in the fulfillment chain.
// Delivered and cancelled orders do not advance; unknown statuses restart
// the chain.
func NextOrderStatus(s string) string {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == OrderCancelled || normalized == OrderDelivered {
		return normalized
	}
	for i, status := range OrderStatuses {
		if status == normalized {
			return OrderStatuses[i+1]
		}
	}
	return OrderStatuses[0]
}
