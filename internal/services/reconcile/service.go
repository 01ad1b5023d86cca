package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=reconcile

type staleFinder interface {
	StalePending(ctx context.Context, olderThan time.Time, limit int) ([]uuid.UUID, error)
}

type rearmer interface {
	Rearm(ctx context.Context, orderUUID uuid.UUID, kind models.EnvelopeKind) (bool, error)
}

type relayWaker interface {
	Wake()
}

type Config struct {
	Interval         time.Duration
	PendingThreshold time.Duration
	BatchSize        int
}

// Service re-sends the order-created message of orders that never got a
// reservation outcome. The message keeps its request id, so the inventory
// side answers from its ledger if it had already applied it.
type Service struct {
	log    logger.Logger
	cfg    Config
	orders staleFinder
	outBox rearmer
	relay  relayWaker
	now    func() time.Time
}

func New(log logger.Logger, cfg Config, orders staleFinder, outBox rearmer, relay relayWaker) *Service {
	return &Service{
		log:    log,
		cfg:    cfg,
		orders: orders,
		outBox: outBox,
		relay:  relay,
		now:    time.Now,
	}
}

func (s *Service) Run(ctx context.Context) error {
	const op = "services.reconcile.Run"

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, op, logger.Duration("interval", s.cfg.Interval), logger.Duration("pending_threshold", s.cfg.PendingThreshold))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				s.log.ErrorContext(ctx, op, logger.Err(err))
			}
		}
	}
}

// Sweep re-arms one batch of stale orders and returns how many were re-armed.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	const op = "services.reconcile.Sweep"

	stale, err := s.orders.StalePending(ctx, s.now().Add(-s.cfg.PendingThreshold), s.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rearmed := 0
	for _, orderUUID := range stale {
		ok, err := s.outBox.Rearm(ctx, orderUUID, models.KindOrderCreated)
		if err != nil {
			return rearmed, fmt.Errorf("%s: %w", op, err)
		}
		if !ok {
			s.log.WarnContext(ctx, op, logger.String("no outbox message for order", orderUUID.String()))
			continue
		}
		rearmed++
	}

	if rearmed > 0 {
		s.log.InfoContext(ctx, op, logger.Int("rearmed", rearmed))
		s.relay.Wake()
	}

	return rearmed, nil
}
