package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// NewSyncProducer waits for all in-sync replicas, so a nil error means the
// message is durable on the broker.
func NewSyncProducer(brokerList []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(brokerList, cfg)
	if err != nil {
		return nil, fmt.Errorf("brokers.kafka.producer.NewSyncProducer: %w", err)
	}

	return producer, nil
}

// Publisher sends keyed messages through a SyncProducer. Messages with the
// same key land on the same partition and keep their order.
type Publisher struct {
	log      logger.Logger
	producer sarama.SyncProducer
}

func NewPublisher(log logger.Logger, producer sarama.SyncProducer) *Publisher {
	return &Publisher{
		log:      log,
		producer: producer,
	}
}

func (p *Publisher) Publish(ctx context.Context, topic, key string, value []byte, headers map[string]string) error {
	const op = "brokers.kafka.producer.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	for k, v := range headers {
		message.Headers = append(message.Headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.WarnContext(ctx, op, logger.String("topic", topic), logger.Err(err))
		return fmt.Errorf("%s: send to %s: %w", op, topic, err)
	}

	p.log.DebugContext(ctx, op,
		logger.String("topic", topic),
		logger.String("key", key),
		logger.Int("partition", int(partition)),
		logger.Int64("offset", offset),
	)

	return nil
}

func (p *Publisher) PublishJSON(ctx context.Context, topic, key string, v any) error {
	const op = "brokers.kafka.producer.PublishJSON"

	bytes, err := json.Marshal(v)
	if err != nil {
		p.log.Error(op, logger.String("failed to marshal message", err.Error()))
		return fmt.Errorf("%s: marshal: %w", op, err)
	}

	return p.Publish(ctx, topic, key, bytes, nil)
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
