package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/finance-api/internal/api/http"
	"github.com/spec-kit/finance-api/internal/api/http/handlers"
	"github.com/spec-kit/finance-api/internal/auth"
	"github.com/spec-kit/finance-api/internal/config"
	"github.com/spec-kit/finance-api/internal/events"
	"github.com/spec-kit/finance-api/internal/observability"
	"github.com/spec-kit/finance-api/internal/persistence"
	"github.com/spec-kit/finance-api/internal/repository"
	"github.com/spec-kit/finance-api/internal/service"
	"github.com/spec-kit/finance-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	accountRepo := repository.NewAccountRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	subcategoryRepo := repository.NewSubcategoryRepository(pool)
	transactionRepo := repository.NewTransactionRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	accountService := service.NewAccountService(accountRepo, dispatcher)
	categoryService := service.NewCategoryService(categoryRepo, subcategoryRepo, transactionRepo, dispatcher)
	subcategoryService := service.NewSubcategoryService(subcategoryRepo, categoryRepo, transactionRepo, dispatcher)

	cookieCodec := auth.NewCookieCodec(cfg.Auth.CookieSecret, cfg.App.IsProduction())
	authMiddleware := auth.NewAuthMiddleware(cookieCodec, authService.TokenManager())
	loginLimiter := auth.NewLoginLimiter(redis.Client, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow(), logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, cookieCodec, loginLimiter),
		Accounts:       handlers.NewAccountsHandler(accountService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		Subcategories:  handlers.NewSubcategoriesHandler(subcategoryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
