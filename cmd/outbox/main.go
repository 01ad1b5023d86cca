package main

import (
	"context"
	"fmt"

	"github.com/tumbleweedd/two_services_system/shop_saga/internal/config"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/outBox"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/services/outBox/send"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/databases/postgres"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// outbox drains the outbox once and exits. The order service runs the same
// relay continuously; this binary is for manual recovery.
func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env)).With(logger.String("service", "outbox"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, log, cfg.Postgres.DSN(), postgres.Options{})
	if err != nil {
		panic(fmt.Sprintf("failed connect to db: %v", err.Error()))
	}
	defer db.Close()

	syncProducer, err := producer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		panic(fmt.Sprintf("failed to create producer: %v", err.Error()))
	}
	publisher := producer.NewPublisher(log, syncProducer)
	defer publisher.Close()

	relay := send.New(log, send.Config{
		Topics: map[models.EnvelopeKind]string{
			models.KindOrderCreated:   cfg.Kafka.OrderCreatedTopic,
			models.KindOrderCancelled: cfg.Kafka.OrderCancelledTopic,
		},
		BatchSize:   cfg.Outbox.BatchSize,
		MaxAttempts: cfg.Outbox.MaxAttempts,
		Lease:       cfg.Outbox.Lease,
	}, publisher, outBox.New(log, db.GetDB()))

	sent, err := relay.Flush(ctx)
	if err != nil {
		panic(fmt.Sprintf("produce messages error: %v", err.Error()))
	}

	log.Info("messages were successfully sent to their topics", logger.Int("sent", sent))
}
