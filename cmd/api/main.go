package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/app"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.App, cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	if err := app.BuildApp(cfg, r, logger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	srv := bootstrap.NewHTTPServer(r, cfg.App)
	if err := bootstrap.Serve(ctx, srv, cfg.App.ShutdownTimeout, auditLogger, logger); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
