package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/HackathonLifecycle/internal/cache"
	"github.com/stpnv0/HackathonLifecycle/internal/config"
	"github.com/stpnv0/HackathonLifecycle/internal/domain"
	"github.com/stpnv0/HackathonLifecycle/internal/handler"
	"github.com/stpnv0/HackathonLifecycle/internal/metrics"
	"github.com/stpnv0/HackathonLifecycle/internal/middleware"
	"github.com/stpnv0/HackathonLifecycle/internal/notification"
	"github.com/stpnv0/HackathonLifecycle/internal/repository"
	"github.com/stpnv0/HackathonLifecycle/internal/router"
	"github.com/stpnv0/HackathonLifecycle/internal/scheduler"
	"github.com/stpnv0/HackathonLifecycle/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	appName       = "HackathonLifecycle"
	migrationsDir = "migrations"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	cache      *cache.PhaseCache
	registry   *prometheus.Registry
	reconciler *service.ReconcileService
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if err = runMigrations(cfg, log); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initCache(); err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// Migrate applies pending migrations without starting anything else.
func Migrate(cfg *config.Config) error {
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	return runMigrations(cfg, log)
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initCache() error {
	c, err := cache.NewPhaseCache(context.Background(), cache.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
		TTL:      a.cfg.CacheTTL(),
		AlertTTL: a.cfg.Telegram.AlertCooldown,
	})
	if err != nil {
		return err
	}
	a.cache = c

	if !c.Enabled() {
		a.log.Warn("redis address is empty, phase cache disabled")
		return nil
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "phase cache connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.CacheTTL()),
	)

	return nil
}

func (a *App) initServices() error {
	freshness, err := service.ParseFreshness(a.cfg.Lifecycle.Freshness)
	if err != nil {
		return err
	}

	var reconcileMetrics *metrics.Reconcile
	if a.cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if reconcileMetrics, err = metrics.NewReconcile(a.registry); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
	}

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init alerter: %w", err)
	}

	hackathonRepo := repository.NewHackathonRepo(a.db)

	a.reconciler = service.NewReconcileService(
		hackathonRepo,
		a.cache,
		alerter,
		a.log,
		service.WithMetrics(reconcileMetrics),
		service.WithAlertLedger(a.cache),
	)
	facade := service.NewLifecycleFacade(a.reconciler, a.cache, freshness, a.log)
	hackathonService := service.NewHackathonService(hackathonRepo, a.reconciler, facade, a.log)

	a.scheduler = scheduler.New(
		a.reconciler,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	var metricsHandler http.Handler
	if a.registry != nil {
		metricsHandler = promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})
	}

	h := handler.NewHandler(hackathonService, a.reconciler)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		metricsHandler,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "services initialised",
		logger.String("freshness", string(freshness)),
		logger.Any("metrics", a.registry != nil),
	)

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Scheduler.Enabled {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

// ReconcileOnce runs a single reconciliation pass over every hackathon and
// releases the app's resources.
func (a *App) ReconcileOnce() (*domain.ReconcileReport, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := a.reconciler.ReconcileAll(ctx, domain.Selector{})

	if closeErr := a.close(); closeErr != nil && err == nil {
		err = closeErr
	}

	return report, err
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.close(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) close() error {
	if err := a.cache.Close(); err != nil {
		return fmt.Errorf("close cache: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	return nil
}

func runMigrations(cfg *config.Config, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
