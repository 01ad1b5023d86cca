package status

import (
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
)

type UpdateStatusRequest struct {
	OrderUUID string `json:"order_uuid" validate:"required,uuid"`
	Status    string `json:"status" validate:"required"`
}

func (r *UpdateStatusRequest) validate() error {
	if err := response.Validate(r); err != nil {
		return err
	}

	if _, ok := models.ParseOrderStatus(r.Status); !ok {
		return internalErrors.ErrStatusNotFound
	}

	return nil
}

func (r *UpdateStatusRequest) toServiceRepresentation() (uuid.UUID, models.OrderStatus) {
	status, _ := models.ParseOrderStatus(r.Status)
	return uuid.MustParse(r.OrderUUID), status
}
