package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

// NewHTTPServer builds the API server from the app config.
func NewHTTPServer(handler http.Handler, cfg config.AppConfig) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Serve runs srv until ctx is done, records the shutdown in the audit log
// and drains in-flight requests for at most shutdownTimeout.
func Serve(
	ctx context.Context,
	srv *http.Server,
	shutdownTimeout time.Duration,
	auditLogger AuditLogger,
	logger *zap.Logger,
) error {
	log := logger.Named("http.server")
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("HTTP server stopped", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received", zap.Duration("timeout", shutdownTimeout))
	auditLogger.Log(context.Background(), AuditLog{
		Action:  AuditServerShutdown,
		Message: "Server is shutting down",
		Meta: map[string]any{
			"addr":   srv.Addr,
			"reason": context.Cause(ctx).Error(),
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("server exited gracefully")
	return nil
}
