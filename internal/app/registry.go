package app

import (
	"github.com/TheLeeJungYan/EINV-POS-API/internal/auth"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/bootstrap"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/category"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/company"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/config"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/messaging/kafka"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/metrics"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/middleware"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/product"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/rbac"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/rbac/infra"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/security"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/shared/counter"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/storage"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/transaction"
	"github.com/TheLeeJungYan/EINV-POS-API/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rx *sqlx.DB,
	rdb *redis.Client,
	domainMetrics *metrics.DomainMetrics,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	categoryRepo := category.NewRepository(gormDB)
	productRepo := product.NewRepository(gormDB)
	transactionRepo := transaction.NewRepository(gormDB)
	paymentTypeRepo := transaction.NewPaymentTypeRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB, rx)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(infra.DefaultGrants)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Infrastructure ---
	passwords := security.NewPasswordHasher(cfg.Security)
	tokens := security.NewTokenService(cfg.Security)
	uploader := storage.NewLocalUploader(cfg.Storage.UploadDir, cfg.Storage.PublicBaseURL, logger)
	productCache := product.NewCache(rdb, cfg.Cache.ProductTTL, domainMetrics, logger)
	summaryStore := transaction.NewSummaryStore(rdb)
	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	// --- Services ---
	userService := user.NewService(userRepo, passwords, logger)
	authService := auth.NewService(gormDB, companyRepo, userRepo, passwords, tokens, auditLogger, cfg.Security.TokenTTL, logger)
	companyService := company.NewService(companyRepo, logger)
	categoryService := category.NewService(categoryRepo, logger)
	productService := product.NewService(gormDB, productRepo, outboxRepo, uploader, productCache, logger)
	transactionService := transaction.NewService(gormDB, transactionRepo, paymentTypeRepo, counterRepo, outboxRepo, summaryStore, domainMetrics, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure: cfg.App.IsProduction(),
		MaxAge: cfg.Security.TokenTTL,
	}, logger)
	userHandler := user.NewHandler(userService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	categoryHandler := category.NewHandler(categoryService, logger)
	productHandler := product.NewHandler(productService, cfg.Storage.MaxUploadMB<<20, logger)
	transactionHandler := transaction.NewHandler(transactionService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Middleware ---
	authMiddleware := middleware.AuthMiddleware(tokens, userService)
	optionalAuth := middleware.OptionalAuth(tokens, userService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		user.RegisterRoutes(api, userHandler, authMiddleware, rbacService)
		company.RegisterRoutes(api, companyHandler, authMiddleware, rbacService)
		category.RegisterRoutes(api, categoryHandler, authMiddleware, rbacService)
		product.RegisterRoutes(api, productHandler, authMiddleware, optionalAuth, rbacService)
		transaction.RegisterRoutes(api, transactionHandler, authMiddleware, rbacService, rdb)
		rbac.RegisterRoutes(api.Group("", authMiddleware), rbacHandler)
	}

	return nil
}
