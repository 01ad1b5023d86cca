package result

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/notify"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/order"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=result

type reservationRecorder interface {
	TransitionReservation(ctx context.Context, orderUUID uuid.UUID, tr order.ReservationTransition) (*models.Order, models.OrderStatus, bool, error)
}

type notifier interface {
	Notify(ctx context.Context, name string, userUUID uuid.UUID, payload any)
}

// Service applies inventory outcomes to orders.
type Service struct {
	log   logger.Logger
	cache *cache.Layer

	recorder reservationRecorder
	notifier notifier
}

func New(log logger.Logger, cache *cache.Layer, recorder reservationRecorder, notifier notifier) *Service {
	return &Service{
		log:      log,
		cache:    cache,
		recorder: recorder,
		notifier: notifier,
	}
}

// Handle records one result. Redelivered or stale results leave the order
// untouched. Only storage errors are returned.
func (s *Service) Handle(ctx context.Context, res models.ResultEnvelope) error {
	const op = "services.result.Handle"

	tr, event, ok := transitionFor(res)
	if !ok {
		s.log.WarnContext(ctx, op,
			logger.String("order_uuid", res.OrderUUID.String()),
			logger.String("kind", string(res.Kind)),
			logger.String("error", res.Error),
		)
		return nil
	}

	updated, previous, changed, err := s.recorder.TransitionReservation(ctx, res.OrderUUID, tr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !changed {
		s.log.DebugContext(ctx, op,
			logger.String("order_uuid", res.OrderUUID.String()),
			logger.String("skipped", string(tr.To)),
		)
		return nil
	}

	s.cache.Invalidate(ctx, cache.OrderTags(updated, previous)...)
	s.notifier.Notify(ctx, event, updated.UserUUID, res)

	s.log.InfoContext(ctx, op,
		logger.String("order_uuid", res.OrderUUID.String()),
		logger.String("reservation_state", string(updated.ReservationState)),
	)

	return nil
}

func transitionFor(res models.ResultEnvelope) (order.ReservationTransition, string, bool) {
	switch {
	case res.Kind == models.KindOrderCreated && res.Success:
		return order.ReservationTransition{
			To:   models.ReservationReserved,
			From: []models.ReservationState{models.ReservationAwaiting},
		}, notify.EventOrderReserved, true
	case res.Kind == models.KindOrderCreated:
		// nothing was reserved, so there is nothing to compensate
		return order.ReservationTransition{
			To:     models.ReservationRejected,
			From:   []models.ReservationState{models.ReservationAwaiting},
			Cancel: true,
		}, notify.EventOrderRejected, true
	case res.Kind == models.KindOrderCancelled && res.Success:
		return order.ReservationTransition{
			To:   models.ReservationReleased,
			From: []models.ReservationState{models.ReservationAwaiting, models.ReservationReserved},
		}, notify.EventOrderReleased, true
	default:
		return order.ReservationTransition{}, "", false
	}
}
