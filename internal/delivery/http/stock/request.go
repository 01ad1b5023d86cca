package stock

import (
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
)

type RestockRequest struct {
	ProductUUID string `json:"product_uuid" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
}

func (r *RestockRequest) validate() error {
	return response.Validate(r)
}

func (r *RestockRequest) toServiceRepresentation() (uuid.UUID, int) {
	return uuid.MustParse(r.ProductUUID), r.Quantity
}
