package send

import (
	"context"
	"fmt"
	"time"

	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=send

type outBoxStore interface {
	Claim(ctx context.Context, limit int, lease time.Duration) ([]models.OutBoxMessage, error)
	MarkSent(ctx context.Context, ids []int64) error
	MarkFailed(ctx context.Context, id int64, cause string, maxAttempts int) (bool, error)
}

type publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte, headers map[string]string) error
}

type Config struct {
	Topics       map[models.EnvelopeKind]string
	BatchSize    int
	MaxAttempts  int
	PollInterval time.Duration
	Lease        time.Duration
}

// Service relays committed outbox messages to the broker. Delivery is
// at-least-once: a crash between publish and MarkSent resends the message
// with the same request id.
type Service struct {
	log       logger.Logger
	cfg       Config
	publisher publisher
	store     outBoxStore

	wake chan struct{}
}

func New(log logger.Logger, cfg Config, publisher publisher, store outBoxStore) *Service {
	if cfg.Lease <= 0 {
		cfg.Lease = 30 * time.Second
	}

	return &Service{
		log:       log,
		cfg:       cfg,
		publisher: publisher,
		store:     store,
		wake:      make(chan struct{}, 1),
	}
}

// Wake asks the relay to flush now. It never blocks.
func (s *Service) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run flushes on every poll tick and on every Wake until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	const op = "services.outBox.Run"

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	s.log.InfoContext(ctx, op, logger.Duration("poll_interval", s.cfg.PollInterval), logger.Duration("lease", s.cfg.Lease))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-s.wake:
		}

		if _, err := s.Flush(ctx); err != nil && ctx.Err() == nil {
			s.log.ErrorContext(ctx, op, logger.Err(err))
		}
	}
}

// Flush sends batches until nothing is left to claim or a send fails, and
// returns the number of messages delivered. Failed messages wait for the
// next tick.
func (s *Service) Flush(ctx context.Context) (int, error) {
	total := 0

	for {
		sent, claimed, err := s.Send(ctx)
		total += sent
		if err != nil {
			return total, err
		}

		if claimed < s.cfg.BatchSize || sent < claimed {
			return total, nil
		}
	}
}

// Send relays one batch.
func (s *Service) Send(ctx context.Context) (sent, claimed int, err error) {
	const op = "services.outBox.Send"

	messages, err := s.store.Claim(ctx, s.cfg.BatchSize, s.cfg.Lease)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: claim messages: %w", op, err)
	}

	processedMessagesIDs := make([]int64, 0, len(messages))

	for _, msg := range messages {
		if err = s.publish(ctx, msg); err != nil {
			s.fail(ctx, msg, err)
			continue
		}

		processedMessagesIDs = append(processedMessagesIDs, msg.ID)
	}

	if err = s.store.MarkSent(ctx, processedMessagesIDs); err != nil {
		return 0, len(messages), fmt.Errorf("%s: mark sent: %w", op, err)
	}

	return len(processedMessagesIDs), len(messages), nil
}

func (s *Service) publish(ctx context.Context, msg models.OutBoxMessage) error {
	topic, ok := s.cfg.Topics[msg.Kind]
	if !ok {
		return fmt.Errorf("no topic for kind %q", msg.Kind)
	}

	headers := map[string]string{
		"request_uuid": msg.EventUUID.String(),
		"kind":         string(msg.Kind),
	}

	return s.publisher.Publish(ctx, topic, msg.OrderUUID.String(), msg.Payload, headers)
}

func (s *Service) fail(ctx context.Context, msg models.OutBoxMessage, cause error) {
	const op = "services.outBox.fail"

	dead, err := s.store.MarkFailed(ctx, msg.ID, cause.Error(), s.cfg.MaxAttempts)
	if err != nil {
		s.log.ErrorContext(ctx, op, logger.Int64("id", msg.ID), logger.Err(err))
		return
	}

	if dead {
		s.log.ErrorContext(ctx, op,
			logger.Int64("id", msg.ID),
			logger.String("order_uuid", msg.OrderUUID.String()),
			logger.String("kind", string(msg.Kind)),
			logger.String("dead", cause.Error()),
		)
		return
	}

	s.log.WarnContext(ctx, op, logger.Int64("id", msg.ID), logger.Err(cause))
}
