package get

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=get

type orderGetter interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	OrdersByUUIDs(ctx context.Context, UUIDs []uuid.UUID) ([]models.Order, error)
	OrdersByUser(ctx context.Context, userUUID uuid.UUID, limit, offset int) ([]models.Order, error)
	OrdersByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error)
}

type Handler struct {
	log logger.Logger

	orderGetter orderGetter
}

func NewHandler(log logger.Logger, orderGetter orderGetter) *Handler {
	return &Handler{
		log:         log,
		orderGetter: orderGetter,
	}
}

func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.get.Order"

	orderUUID, err := orderUUIDParam(r)
	if err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	order, err := h.orderGetter.Order(r.Context(), orderUUID)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "order found", order)
}

func (h *Handler) OrdersByUUIDs(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.get.OrdersByUUIDs"

	request := ordersByUUIDsRequest(r)
	if err := request.validate(); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	orders, err := h.orderGetter.OrdersByUUIDs(r.Context(), request.toServiceRepresentation())
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "orders found", map[string]any{"orders": orders})
}

func (h *Handler) OrdersByUser(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.get.OrdersByUser"

	userUUID, err := userUUIDParam(r)
	if err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	p, err := pageParams(r)
	if err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	orders, err := h.orderGetter.OrdersByUser(r.Context(), userUUID, p.limit, p.offset)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "orders found", map[string]any{"orders": orders})
}

func (h *Handler) OrdersByStatus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.get.OrdersByStatus"

	status, err := statusParam(r)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	p, err := pageParams(r)
	if err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	orders, err := h.orderGetter.OrdersByStatus(r.Context(), status, p.limit, p.offset)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "orders found", map[string]any{"orders": orders})
}
