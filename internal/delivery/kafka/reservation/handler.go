package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=reservation

type applier interface {
	Apply(ctx context.Context, env models.Envelope) (models.ResultEnvelope, error)
}

type resultPublisher interface {
	PublishJSON(ctx context.Context, topic, key string, v any) error
}

// Handler applies order lifecycle envelopes to stock and reports each
// outcome on the result topic.
type Handler struct {
	log         logger.Logger
	applier     applier
	publisher   resultPublisher
	resultTopic string
}

func NewHandler(log logger.Logger, applier applier, publisher resultPublisher, resultTopic string) *Handler {
	return &Handler{
		log:         log,
		applier:     applier,
		publisher:   publisher,
		resultTopic: resultTopic,
	}
}

func (h *Handler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "delivery.kafka.reservation.Handle"

	env, err := decode(msg.Value)
	if err != nil {
		return consumer.Permanent(fmt.Errorf("%s: %w", op, err))
	}

	res, err := h.applier.Apply(ctx, env)
	if err != nil {
		if errors.Is(err, internalErrors.ErrMalformedMessage) {
			return consumer.Permanent(fmt.Errorf("%s: %w", op, err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = h.publisher.PublishJSON(ctx, h.resultTopic, env.OrderUUID.String(), res); err != nil {
		return fmt.Errorf("%s: publish result: %w", op, err)
	}

	h.log.DebugContext(ctx, op,
		logger.String("request_uuid", env.UUID()),
		logger.String("kind", string(env.Kind)),
		logger.Bool("success", res.Success),
	)

	return nil
}

func decode(value []byte) (models.Envelope, error) {
	var env models.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", internalErrors.ErrMalformedMessage, err)
	}

	switch {
	case env.Version > models.EnvelopeVersion:
		return models.Envelope{}, fmt.Errorf("%w: unsupported version %d", internalErrors.ErrMalformedMessage, env.Version)
	case env.RequestUUID == uuid.Nil:
		return models.Envelope{}, fmt.Errorf("%w: missing request_uuid", internalErrors.ErrMalformedMessage)
	case env.OrderUUID == uuid.Nil:
		return models.Envelope{}, fmt.Errorf("%w: missing order_uuid", internalErrors.ErrMalformedMessage)
	}

	return env, nil
}
