package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tumbleweedd/two_services_system/shop_saga/internal/config"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

type App struct {
	log             logger.Logger
	httpServer      *http.Server
	port            int
	shutdownTimeout time.Duration
}

func NewApp(log logger.Logger, handler http.Handler, cfg config.HTTPConfig) *App {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{
		log:             log,
		httpServer:      httpServer,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until ctx is done and then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	const op = "httpapp.Run"

	a.log.Info(op, logger.Int("port", a.port))

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s: %w", op, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return a.Stop()
}

func (a *App) Stop() error {
	const op = "httpapp.Stop"

	a.log.Info(op, logger.String("status", "stopping http server"))

	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
