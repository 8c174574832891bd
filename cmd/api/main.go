package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"sales-dashboard-service/internal/platform/config"
	"sales-dashboard-service/internal/platform/logging"
	"sales-dashboard-service/internal/platform/telemetry"
	salesCache "sales-dashboard-service/internal/sales/adapters/cache"
	salesHttp "sales-dashboard-service/internal/sales/adapters/http/fiber"
	salesRepoPg "sales-dashboard-service/internal/sales/adapters/postgres"
	salesUsecase "sales-dashboard-service/internal/sales/core/usecase"

	_ "sales-dashboard-service/docs"
)

// @title Sales Dashboard API
// @version 1.0
// @description Read-only sales analytics over the data_ETL table.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load(os.Args[1:], config.EnvFile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(2)
	}

	// DB connection
	db, err := salesRepoPg.Open(salesRepoPg.PoolConfig{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		level.Error(logger).Log("msg", "failed to open database", "driver", cfg.DBDriver, "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// Requests report source_unavailable while the database is down.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.QueryTimeout)
	if err := db.PingContext(pingCtx); err != nil {
		level.Warn(logger).Log("msg", "database not reachable at startup", "err", err)
	}
	cancelPing()

	reg := telemetry.NewRegistry()

	// Repository + cache
	salesRepository := salesRepoPg.NewSalesRepository(salesRepoPg.NewSQLDB(db))
	tableCache := salesCache.NewTableCache(
		salesUsecase.NewTableLoader(salesRepository),
		salesCache.Config{TTL: cfg.CacheTTL, LoadTimeout: cfg.QueryTimeout},
		reg,
		log.With(logger, "component", "table_cache"),
	)

	// Usecases
	getDashboardUC := salesUsecase.NewGetDashboardUseCase(tableCache, logger)
	getFilterOptionsUC := salesUsecase.NewGetFilterOptionsUseCase(tableCache, logger)
	exportSalesUC := salesUsecase.NewExportSalesUseCase(tableCache, logger)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(telemetry.AccessLog(log.With(logger, "component", "http")))
	app.Use(reg.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", reg.Handler())

	// sales endpoints
	salesHandler := salesHttp.NewSalesHandler(getDashboardUC, getFilterOptionsUC, exportSalesUC, logger)
	salesHandler.Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			level.Error(logger).Log("msg", "fiber stopped", "err", err)
		}
	}()

	level.Info(logger).Log("msg", "server started", "addr", cfg.ListenAddr, "driver", cfg.DBDriver, "cache_ttl", cfg.CacheTTL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range quit {
		if sig == syscall.SIGHUP {
			tableCache.Invalidate()
			level.Info(logger).Log("msg", "sales table cache invalidated")
			continue
		}
		break
	}

	level.Info(logger).Log("msg", "shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		level.Error(logger).Log("msg", "fiber shutdown error", "err", err)
	}

	level.Info(logger).Log("msg", "server exiting")
}
