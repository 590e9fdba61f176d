package app

import (
	"context"
	"net/http"

	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/connection"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const serviceName = "einv-pos-api"

func BuildApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) error {
	log := logger.Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB.DSN(), cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	log.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	rx := sqlx.NewDb(sqlDB, "pgx")

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.DB.MaxRetries)
	if err != nil {
		return err
	}
	log.Info("redis connection established")

	if err := migrate(context.Background(), gormDB); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(serviceName, reg)

	// 2. Global middleware
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		httpMetrics.Middleware(),
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler(reg)))
	router.GET("/healthz", healthz(gormDB, rdb))
	router.Static("/uploads", cfg.Storage.UploadDir)

	// 3. Register Modules & Routes
	return registerModules(router, cfg, gormDB, rx, rdb, metrics.NewDomainMetrics(reg), logger)
}

func healthz(db *gorm.DB, rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		status := gin.H{"database": "up", "redis": "up"}
		code := http.StatusOK

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		}

		response.Success(c, code, status, nil)
	}
}
