package notify

const (
	EventOrderCreated       = "order.created"
	EventOrderCancelled     = "order.cancelled"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderReserved      = "order.reserved"
	EventOrderRejected      = "order.rejected"
	EventOrderReleased      = "order.released"
)
