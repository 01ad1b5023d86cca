package create

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/notify"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=create

type orderCreator interface {
	Create(ctx context.Context, order *models.Order) (uuid.UUID, error)
}

type referenceChecker interface {
	UserExists(ctx context.Context, userUUID uuid.UUID) (bool, error)
	StatusExists(ctx context.Context, status models.OrderStatus) (bool, error)
}

type notifier interface {
	Notify(ctx context.Context, name string, userUUID uuid.UUID, payload any)
}

type relayWaker interface {
	Wake()
}

type Request struct {
	UserUUID            uuid.UUID
	ShippingAddressUUID uuid.UUID
	CouponUUID          uuid.NullUUID
	TotalAmount         decimal.Decimal
	Items               []models.OrderItem
}

type OrderCreationService struct {
	log   logger.Logger
	cache *cache.Layer

	orderCreator     orderCreator
	referenceChecker referenceChecker
	notifier         notifier
	relay            relayWaker
}

func New(
	log logger.Logger,
	cache *cache.Layer,
	orderCreator orderCreator,
	referenceChecker referenceChecker,
	notifier notifier,
	relay relayWaker,
) *OrderCreationService {
	return &OrderCreationService{
		log:              log,
		cache:            cache,
		orderCreator:     orderCreator,
		referenceChecker: referenceChecker,
		notifier:         notifier,
		relay:            relay,
	}
}

// CreateOrder stores an order whose total was computed by the caller.
func (os *OrderCreationService) CreateOrder(ctx context.Context, req Request) (*models.Order, error) {
	const op = "services.order.CreateOrder"

	if req.TotalAmount.IsNegative() {
		return nil, fmt.Errorf("%s: negative total: %w", op, internalErrors.ErrInvalidOrder)
	}

	// A total-only order carries no items.
	if len(req.Items) > 0 {
		return nil, fmt.Errorf("%s: items on a total-only order: %w", op, internalErrors.ErrInvalidOrder)
	}

	order, err := os.create(ctx, req, req.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

// CreateOrderWithItems stores an order whose total is the sum of its items.
func (os *OrderCreationService) CreateOrderWithItems(ctx context.Context, req Request) (*models.Order, error) {
	const op = "services.order.CreateOrderWithItems"

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%s: no items: %w", op, internalErrors.ErrInvalidOrder)
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%s: product %s: %w", op, item.ProductUUID, internalErrors.ErrInvalidQuantity)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%s: product %s: negative unit price: %w", op, item.ProductUUID, internalErrors.ErrInvalidOrder)
		}
	}

	order, err := os.create(ctx, req, models.ItemsTotal(req.Items))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

func (os *OrderCreationService) create(ctx context.Context, req Request, total decimal.Decimal) (*models.Order, error) {
	const op = "services.order.create"

	if err := os.checkReferences(ctx, req.UserUUID); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, len(req.Items))
	copy(items, req.Items)

	order := &models.Order{
		UserUUID:            req.UserUUID,
		Status:              models.OrderStatusPending,
		TotalAmount:         total,
		ShippingAddressUUID: req.ShippingAddressUUID,
		CouponUUID:          req.CouponUUID,
		Items:               items,
	}

	orderUUID, err := os.orderCreator.Create(ctx, order)
	if err != nil {
		os.log.ErrorContext(ctx, op, logger.Err(err))
		return nil, err
	}

	order.OrderUUID = orderUUID
	for i := range order.Items {
		order.Items[i].OrderUUID = orderUUID
	}

	os.relay.Wake()
	os.cache.Invalidate(ctx, cache.OrderTags(order)...)
	os.notifier.Notify(ctx, notify.EventOrderCreated, order.UserUUID, order)

	os.log.InfoContext(ctx, op, logger.String("order_uuid", orderUUID.String()))

	return order, nil
}

func (os *OrderCreationService) checkReferences(ctx context.Context, userUUID uuid.UUID) error {
	exists, err := os.referenceChecker.UserExists(ctx, userUUID)
	if err != nil {
		return err
	}
	if !exists {
		return internalErrors.ErrUserNotFound
	}

	exists, err = os.referenceChecker.StatusExists(ctx, models.OrderStatusPending)
	if err != nil {
		return err
	}
	if !exists {
		return internalErrors.ErrStatusNotFound
	}

	return nil
}
