package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is an ordered rank: later stages have larger values.
type OrderStatus int

const (
	UndefinedStatus OrderStatus = iota
	OrderStatusPending
	OrderStatusPaid
	OrderStatusProcessing
	OrderStatusShipped
	OrderStatusInTransit
	OrderStatusOutForDelivery
	OrderStatusDelivered
	OrderStatusCanceled
	OrderStatusReturned
)

var statusNames = map[OrderStatus]string{
	OrderStatusPending:        "pending",
	OrderStatusPaid:           "paid",
	OrderStatusProcessing:     "processing",
	OrderStatusShipped:        "shipped",
	OrderStatusInTransit:      "in_transit",
	OrderStatusOutForDelivery: "out_for_delivery",
	OrderStatusDelivered:      "delivered",
	OrderStatusCanceled:       "cancelled",
	OrderStatusReturned:       "returned",
}

func (s OrderStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "undefined"
}

func (s OrderStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseOrderStatus accepts the lower-case status name.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	for status, n := range statusNames {
		if n == name {
			return status, true
		}
	}

	return UndefinedStatus, false
}

// Cancellable reports whether an order in this status may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s != UndefinedStatus && s < OrderStatusShipped
}

// CanTransitionTo applies the rank rules: ranks only go up, Cancelled is
// reachable only before Shipped and is terminal, Returned only follows Delivered.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s == OrderStatusCanceled || s == OrderStatusReturned {
		return false
	}

	switch next {
	case OrderStatusCanceled:
		return s.Cancellable()
	case OrderStatusReturned:
		return s == OrderStatusDelivered
	default:
		return next > s
	}
}

type ReservationState string

const (
	ReservationAwaiting ReservationState = "awaiting"
	ReservationReserved ReservationState = "reserved"
	ReservationRejected ReservationState = "rejected"
	ReservationReleased ReservationState = "released"
)

type Order struct {
	OrderUUID              uuid.UUID        `json:"order_uuid" db:"uuid"`
	UserUUID               uuid.UUID        `json:"user_uuid" db:"user_uuid"`
	Status                 OrderStatus      `json:"status" db:"status"`
	TotalAmount            decimal.Decimal  `json:"total_amount" db:"total_amount"`
	ShippingAddressUUID    uuid.UUID        `json:"shipping_address_uuid" db:"shipping_address_uuid"`
	CouponUUID             uuid.NullUUID    `json:"coupon_uuid" db:"coupon_uuid"`
	ReservationRequestUUID uuid.UUID        `json:"reservation_request_uuid" db:"reservation_request_uuid"`
	ReservationState       ReservationState `json:"reservation_state" db:"reservation_state"`
	Deleted                bool             `json:"-" db:"deleted"`
	CreatedAt              time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at" db:"updated_at"`
	Items                  []OrderItem      `json:"items" db:"-"`
}

type OrderItem struct {
	OrderUUID   uuid.UUID       `json:"order_uuid" db:"order_uuid"`
	ProductUUID uuid.UUID       `json:"product_uuid" db:"product_uuid"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" db:"unit_price"`
}

func (i OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemsTotal sums quantity × unit price over all items.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}

	return total
}
