package stock

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/services/inventory/reserve"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=stock

var errInvalidProductUUID = errors.New("invalid product_uuid")

type stockService interface {
	Stock(ctx context.Context, productUUID uuid.UUID) (*models.ProductStock, error)
	Stocks(ctx context.Context) ([]models.ProductStock, error)
	Restock(ctx context.Context, productUUID uuid.UUID, qty int) (*models.ProductStock, error)
}

type statsProvider interface {
	Stats() reserve.StatsSnapshot
}

type Handler struct {
	log logger.Logger

	stock stockService
	stats statsProvider
}

func NewHandler(log logger.Logger, stock stockService, stats statsProvider) *Handler {
	return &Handler{
		log:   log,
		stock: stock,
		stats: stats,
	}
}

func (h *Handler) Stocks(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.stock.Stocks"

	stocks, err := h.stock.Stocks(r.Context())
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "stock levels", map[string]any{"stocks": stocks})
}

func (h *Handler) Stock(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.stock.Stock"

	productUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		response.BadRequest(w, h.log, op, errInvalidProductUUID)
		return
	}

	ps, err := h.stock.Stock(r.Context(), productUUID)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "stock level", ps)
}

func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.stock.Restock"

	var request RestockRequest

	if err := response.Decode(r, &request); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	if err := request.validate(); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	productUUID, qty := request.toServiceRepresentation()
	ps, err := h.stock.Restock(r.Context(), productUUID, qty)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "product restocked", ps)
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, "idempotency stats", h.stats.Stats())
}
