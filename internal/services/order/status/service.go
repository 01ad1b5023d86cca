package status

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/notify"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=status

type orderStore interface {
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	UpdateStatus(ctx context.Context, orderUUID uuid.UUID, from, to models.OrderStatus) (*models.Order, error)
}

type statusChecker interface {
	StatusExists(ctx context.Context, status models.OrderStatus) (bool, error)
}

type canceler interface {
	Cancel(ctx context.Context, orderUUID uuid.UUID) (bool, error)
}

type notifier interface {
	Notify(ctx context.Context, name string, userUUID uuid.UUID, payload any)
}

type Service struct {
	log   logger.Logger
	cache *cache.Layer

	orders        orderStore
	statusChecker statusChecker
	canceler      canceler
	notifier      notifier
}

func New(
	log logger.Logger,
	cache *cache.Layer,
	orders orderStore,
	statusChecker statusChecker,
	canceler canceler,
	notifier notifier,
) *Service {
	return &Service{
		log:           log,
		cache:         cache,
		orders:        orders,
		statusChecker: statusChecker,
		canceler:      canceler,
		notifier:      notifier,
	}
}

// UpdateStatus moves the order to status following the rank rules. An order
// leaves Pending only once its stock is reserved.
// Cancellation goes through the cancel flow so that stock is released.
func (s *Service) UpdateStatus(ctx context.Context, orderUUID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	const op = "services.order.UpdateStatus"

	exists, err := s.statusChecker.StatusExists(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists || !status.Valid() {
		return nil, fmt.Errorf("%s: %d: %w", op, int(status), internalErrors.ErrStatusNotFound)
	}

	if status == models.OrderStatusCanceled {
		if _, err = s.canceler.Cancel(ctx, orderUUID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		order, err := s.orders.Order(ctx, orderUUID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return order, nil
	}

	current, err := s.orders.Order(ctx, orderUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !current.Status.CanTransitionTo(status) {
		if current.Status == models.OrderStatusCanceled {
			return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrOrderAlreadyCanceled)
		}
		return nil, fmt.Errorf("%s: %s -> %s: %w", op, current.Status, status, internalErrors.ErrInvalidStatusTransition)
	}

	if current.ReservationState != models.ReservationReserved {
		return nil, fmt.Errorf("%s: reservation %s: %w", op, current.ReservationState, internalErrors.ErrReservationPending)
	}

	updated, err := s.orders.UpdateStatus(ctx, orderUUID, current.Status, status)
	if err != nil {
		s.log.WarnContext(ctx, op, logger.String("order_uuid", orderUUID.String()), logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	updated.Items = current.Items

	s.cache.Invalidate(ctx, cache.OrderTags(updated, current.Status)...)
	s.notifier.Notify(ctx, notify.EventOrderStatusChanged, updated.UserUUID, map[string]any{
		"order_uuid": updated.OrderUUID,
		"from":       current.Status.String(),
		"to":         updated.Status.String(),
	})

	return updated, nil
}
