package cancel

import (
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
)

type CancelOrderRequest struct {
	OrderUUID string `json:"order_uuid" validate:"required,uuid"`
}

func (r *CancelOrderRequest) validate() error {
	return response.Validate(r)
}

func (r *CancelOrderRequest) toServiceRepresentation() uuid.UUID {
	return uuid.MustParse(r.OrderUUID)
}
