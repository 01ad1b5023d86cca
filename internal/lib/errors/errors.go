package errors

import "errors"

var (
	ErrCancelOrderByStatus     = errors.New("order cannot be cancelled at this stage")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderAlreadyCanceled    = errors.New("order already canceled")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrConcurrentUpdate        = errors.New("order was modified concurrently")
	ErrReservationPending      = errors.New("order stock is not reserved")

	ErrUserNotFound   = errors.New("user not found")
	ErrStatusNotFound = errors.New("order status not found")
	ErrInvalidOrder   = errors.New("invalid order")

	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("invalid quantity")

	// ErrAlreadyRecorded means another delivery already wrote the ledger entry.
	ErrAlreadyRecorded  = errors.New("request already recorded")
	ErrMalformedMessage = errors.New("malformed message")
)
