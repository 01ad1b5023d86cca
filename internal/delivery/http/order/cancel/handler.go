package cancel

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=cancel

type orderCanceler interface {
	Cancel(ctx context.Context, orderUUID uuid.UUID) (bool, error)
}

type Handler struct {
	log           logger.Logger
	orderCanceler orderCanceler
}

func NewHandler(log logger.Logger, orderCanceler orderCanceler) *Handler {
	return &Handler{
		log:           log,
		orderCanceler: orderCanceler,
	}
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.cancel.Cancel"

	var request CancelOrderRequest

	if err := response.Decode(r, &request); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	if err := request.validate(); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	orderUUID := request.toServiceRepresentation()
	cancelled, err := h.orderCanceler.Cancel(r.Context(), orderUUID)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "order canceled", map[string]any{
		"order_uuid": orderUUID,
		"cancelled":  cancelled,
	})
}
