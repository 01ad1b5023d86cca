package cancel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/notify"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=cancel

type orderCanceler interface {
	Cancel(ctx context.Context, orderUUID, requestUUID uuid.UUID) (*models.Order, models.OrderStatus, error)
}

type notifier interface {
	Notify(ctx context.Context, name string, userUUID uuid.UUID, payload any)
}

type relayWaker interface {
	Wake()
}

type OrderCancellationService struct {
	log   logger.Logger
	cache *cache.Layer

	orderCanceler orderCanceler
	notifier      notifier
	relay         relayWaker
}

func New(
	log logger.Logger,
	cache *cache.Layer,
	orderCanceler orderCanceler,
	notifier notifier,
	relay relayWaker,
) *OrderCancellationService {
	return &OrderCancellationService{
		log:           log,
		cache:         cache,
		orderCanceler: orderCanceler,
		notifier:      notifier,
		relay:         relay,
	}
}

// Cancel cancels the order and enqueues the compensation for whatever the
// inventory side reserved for it.
func (os *OrderCancellationService) Cancel(ctx context.Context, orderUUID uuid.UUID) (bool, error) {
	const op = "services.order.Cancel"

	order, previous, err := os.orderCanceler.Cancel(ctx, orderUUID, uuid.New())
	if err != nil {
		switch {
		case errors.Is(err, internalErrors.ErrOrderNotFound):
			os.log.WarnContext(ctx, op, logger.String("order not found by uuid", orderUUID.String()))
		case errors.Is(err, internalErrors.ErrOrderAlreadyCanceled), errors.Is(err, internalErrors.ErrCancelOrderByStatus):
			os.log.InfoContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.Err(err))
		default:
			os.log.ErrorContext(ctx, op, logger.String("cancel order error", err.Error()))
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	os.relay.Wake()
	os.cache.Invalidate(ctx, cache.OrderTags(order, previous)...)
	os.notifier.Notify(ctx, notify.EventOrderCancelled, order.UserUUID, order)

	return true, nil
}
