package create

import (
	"context"
	"net/http"

	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	createService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/create"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=create

type orderCreator interface {
	CreateOrder(ctx context.Context, req createService.Request) (*models.Order, error)
	CreateOrderWithItems(ctx context.Context, req createService.Request) (*models.Order, error)
}

type Handler struct {
	log logger.Logger

	orderCreator orderCreator
}

func NewHandler(log logger.Logger, orderCreator orderCreator) *Handler {
	return &Handler{
		log:          log,
		orderCreator: orderCreator,
	}
}

// Create stores an order with the total given by the client.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.create.Create"

	h.create(w, r, op, false, func(ctx context.Context, req createService.Request) (*models.Order, error) {
		return h.orderCreator.CreateOrder(ctx, req)
	})
}

// CreateWithItems stores an order whose total is computed from its products.
func (h *Handler) CreateWithItems(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.create.CreateWithItems"

	h.create(w, r, op, true, func(ctx context.Context, req createService.Request) (*models.Order, error) {
		return h.orderCreator.CreateOrderWithItems(ctx, req)
	})
}

func (h *Handler) create(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	withItems bool,
	createFn func(context.Context, createService.Request) (*models.Order, error),
) {
	var request CreateOrderRequest

	if err := response.Decode(r, &request); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	if err := request.validate(withItems); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	order, err := createFn(r.Context(), request.toServiceRepresentation())
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.Created(w, "order created", order)
}
