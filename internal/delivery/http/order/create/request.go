package create

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	createService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/create"
)

var (
	errEmptyProducts = errors.New("products can't be empty")
	errProducts      = errors.New("products are not accepted for a total-only order")
	errInvalidAmount = errors.New("amounts can't be negative")
)

type CreateOrderRequest struct {
	UserUUID            string          `json:"user_uuid" validate:"required,uuid"`
	ShippingAddressUUID string          `json:"shipping_address_uuid" validate:"required,uuid"`
	CouponUUID          string          `json:"coupon_uuid" validate:"omitempty,uuid"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	Products            []Product       `json:"products" validate:"dive"`
}

type Product struct {
	UUID      string          `json:"uuid" validate:"required,uuid"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (req *CreateOrderRequest) validate(withItems bool) error {
	if err := response.Validate(req); err != nil {
		return err
	}

	if withItems && len(req.Products) == 0 {
		return errEmptyProducts
	}

	if !withItems && len(req.Products) > 0 {
		return errProducts
	}

	if req.TotalAmount.IsNegative() {
		return errInvalidAmount
	}

	for _, product := range req.Products {
		if product.UnitPrice.IsNegative() {
			return errInvalidAmount
		}
	}

	return nil
}

func (req *CreateOrderRequest) toServiceRepresentation() createService.Request {
	items := make([]models.OrderItem, 0, len(req.Products))
	for _, product := range req.Products {
		items = append(items, models.OrderItem{
			ProductUUID: uuid.MustParse(product.UUID),
			Quantity:    product.Quantity,
			UnitPrice:   product.UnitPrice,
		})
	}

	var coupon uuid.NullUUID
	if req.CouponUUID != "" {
		coupon = uuid.NullUUID{UUID: uuid.MustParse(req.CouponUUID), Valid: true}
	}

	return createService.Request{
		UserUUID:            uuid.MustParse(req.UserUUID),
		ShippingAddressUUID: uuid.MustParse(req.ShippingAddressUUID),
		CouponUUID:          coupon,
		TotalAmount:         req.TotalAmount,
		Items:               items,
	}
}
