package main

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/app"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/apperror"

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

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
