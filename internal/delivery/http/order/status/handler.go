package status

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=status

type statusUpdater interface {
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type Handler struct {
	log           logger.Logger
	statusUpdater statusUpdater
}

func NewHandler(log logger.Logger, statusUpdater statusUpdater) *Handler {
	return &Handler{
		log:           log,
		statusUpdater: statusUpdater,
	}
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.status.UpdateStatus"

	var request UpdateStatusRequest

	if err := response.Decode(r, &request); err != nil {
		response.BadRequest(w, h.log, op, err)
		return
	}

	if err := request.validate(); err != nil {
		if errors.Is(err, internalErrors.ErrStatusNotFound) {
			response.Error(w, h.log, op, err)
			return
		}
		response.BadRequest(w, h.log, op, err)
		return
	}

	orderUUID, status := request.toServiceRepresentation()
	order, err := h.statusUpdater.UpdateStatus(r.Context(), orderUUID, status)
	if err != nil {
		response.Error(w, h.log, op, err)
		return
	}

	response.OK(w, "order status updated", order)
}
