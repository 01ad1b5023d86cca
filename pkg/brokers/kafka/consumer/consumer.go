package consumer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// Handler processes one message. Returning an error wrapped with Permanent
// sends the message to the dead-letter topic without retrying.
type Handler func(ctx context.Context, msg *sarama.ConsumerMessage) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

type deadLetterPublisher interface {
	Publish(ctx context.Context, topic, key string, value []byte, headers map[string]string) error
}

type Config struct {
	MaxRetries      int
	RetryBackoff    time.Duration
	DeadLetterTopic string
}

// GroupHandler implements sarama.ConsumerGroupHandler. A message is marked
// only after it was handled or parked on the dead-letter topic.
type GroupHandler struct {
	log        logger.Logger
	handler    Handler
	deadLetter deadLetterPublisher
	cfg        Config
}

func NewGroupHandler(log logger.Logger, handler Handler, deadLetter deadLetterPublisher, cfg Config) *GroupHandler {
	return &GroupHandler{
		log:        log,
		handler:    handler,
		deadLetter: deadLetter,
		cfg:        cfg,
	}
}

func (h *GroupHandler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (h *GroupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *GroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	const op = "brokers.kafka.consumer.ConsumeClaim"

	ctx := session.Context()

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			if err := h.process(ctx, msg); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				h.log.ErrorContext(ctx, op,
					logger.String("topic", msg.Topic),
					logger.Int64("offset", msg.Offset),
					logger.Err(err),
				)
				return err
			}

			session.MarkMessage(msg, "")
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *GroupHandler) process(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "brokers.kafka.consumer.process"

	var err error
	for attempt := 0; attempt <= h.cfg.MaxRetries; attempt++ {
		if err = h.handler(ctx, msg); err == nil {
			return nil
		}

		if IsPermanent(err) || attempt == h.cfg.MaxRetries {
			break
		}

		h.log.WarnContext(ctx, op,
			logger.String("topic", msg.Topic),
			logger.Int64("offset", msg.Offset),
			logger.Int("attempt", attempt+1),
			logger.Err(err),
		)

		select {
		case <-time.After(h.cfg.RetryBackoff * time.Duration(attempt+1)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return h.toDeadLetter(ctx, msg, err)
}

func (h *GroupHandler) toDeadLetter(ctx context.Context, msg *sarama.ConsumerMessage, cause error) error {
	const op = "brokers.kafka.consumer.toDeadLetter"

	headers := map[string]string{
		"source_topic":     msg.Topic,
		"source_partition": strconv.Itoa(int(msg.Partition)),
		"source_offset":    strconv.FormatInt(msg.Offset, 10),
		"error":            cause.Error(),
	}

	if err := h.deadLetter.Publish(ctx, h.cfg.DeadLetterTopic, string(msg.Key), msg.Value, headers); err != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(cause, err))
	}

	h.log.WarnContext(ctx, op,
		logger.String("topic", msg.Topic),
		logger.Int64("offset", msg.Offset),
		logger.String("dead_letter", h.cfg.DeadLetterTopic),
		logger.Err(cause),
	)

	return nil
}

// Group consumes topics with a sarama consumer group until ctx is done.
type Group struct {
	log     logger.Logger
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewConsumerGroup(brokerList []string, groupID string) (sarama.ConsumerGroup, error) {
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	cfg.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokerList, groupID, cfg)
	if err != nil {
		return nil, fmt.Errorf("brokers.kafka.consumer.NewConsumerGroup: %w", err)
	}

	return group, nil
}

func NewGroup(log logger.Logger, group sarama.ConsumerGroup, topics []string, handler sarama.ConsumerGroupHandler) *Group {
	return &Group{
		log:     log,
		group:   group,
		topics:  topics,
		handler: handler,
	}
}

func (g *Group) Run(ctx context.Context) error {
	const op = "brokers.kafka.consumer.Run"

	go func() {
		for err := range g.group.Errors() {
			g.log.WarnContext(ctx, op, logger.Err(err))
		}
	}()

	for {
		if err := g.group.Consume(ctx, g.topics, g.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			g.log.ErrorContext(ctx, op, logger.Err(err))
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (g *Group) Close() error {
	return g.group.Close()
}
