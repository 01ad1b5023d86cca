package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/tumbleweedd/two_services_system/shop_saga/internal/app"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/config"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env)).With(logger.String("service", "inventory_service"))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	application, err := app.NewInventoryApp(ctx, log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create app: %v", err))
	}

	if err = application.Run(ctx); err != nil {
		log.Error("application stopped with error", logger.Err(err))
	}

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop app: %v", err))
	}

	log.Info("application stopped")
}
