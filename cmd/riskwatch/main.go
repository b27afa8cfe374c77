package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskwatch/riskwatch/app"
	"github.com/riskwatch/riskwatch/pkg"
	"go.uber.org/zap"
)

func main() {
	logger := pkg.NewLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv, cleanup, err := app.NewApp(ctx, logger)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}

	// Start a server in a goroutine to allow signal handling
	go func() {
		logger.Info("riskwatch started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Handle shutdown signals (SIGINT, SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	// Stop the producer and close backends before draining connections
	cancel()
	cleanup()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", zap.Error(err))
	}

	// Flush logs before exit
	_ = logger.Sync()
}
