package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/deal-desk/api/openapi"
	"github.com/donaldgifford/deal-desk/internal/api/handlers"
	mw "github.com/donaldgifford/deal-desk/internal/api/middleware"
	"github.com/donaldgifford/deal-desk/internal/config"
	"github.com/donaldgifford/deal-desk/internal/engine"
	"github.com/donaldgifford/deal-desk/internal/notify"
	"github.com/donaldgifford/deal-desk/internal/store"
	"github.com/donaldgifford/deal-desk/internal/tracing"
	"github.com/donaldgifford/deal-desk/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	ctx := cmd.Context()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		ServiceName:    logger.ServiceName,
		ServiceVersion: Version,
		Endpoint:       cfg.Tracing.Endpoint,
		Insecure:       cfg.Tracing.Insecure,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	shutdownTracing = shutdownTracing.Once()
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("flushing traces", "error", err)
		}
	}()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng := engine.NewEngine(st, newNotifier(cfg, log),
		engine.WithLogger(logger.Component(log, "engine")),
		engine.WithPolicy(cfg.Focus.Policy()),
		engine.WithIgnoredAfter(cfg.Feedback.IgnoredAfter),
		engine.WithOnboardingLateDays(cfg.Focus.OnboardingLateDays),
	)

	sched, err := newScheduler(eng, cfg, log)
	if err != nil {
		return err
	}
	sched.Start()

	e := newRouter(st, eng, log)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	<-sched.Stop().Done()

	errs := []error{e.Shutdown(shutdownCtx), shutdownTracing(shutdownCtx)}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	d := cfg.Notifications.Discord
	if !d.Enabled {
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}
	return notify.NewDiscordNotifier(d.WebhookURL,
		notify.WithUsername(d.Username),
		notify.WithRateLimit(d.RateLimit),
		notify.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	)
}

func newScheduler(eng *engine.Engine, cfg *config.Config, log *slog.Logger) (*engine.Scheduler, error) {
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading schedule timezone: %w", err)
	}

	sched, err := engine.NewScheduler(eng, engine.Schedule{
		TouchResetCron:  cfg.Schedule.TouchResetCron,
		DigestCron:      cfg.Schedule.DigestCron,
		RescoreInterval: cfg.Schedule.RescoreInterval,
		Location:        loc,
	}, logger.Component(log, "scheduler"))
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	return sched, nil
}

// newRouter wires middleware, the Echo CRUD routes, and the Huma typed
// routes onto a fresh Echo instance.
func newRouter(st store.Store, eng *engine.Engine, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	apiLog := logger.Component(log, "api")
	e.Use(mw.Recovery(apiLog), mw.RequestLog(apiLog), mw.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v := handlers.NewValidator()
	v1 := e.Group("/api/v1")

	leads := handlers.NewLeadHandler(st, eng, v)
	v1.GET("/leads", leads.List)
	v1.POST("/leads", leads.Create)
	v1.GET("/leads/:id", leads.Get)
	v1.PUT("/leads/:id", leads.Update)
	v1.DELETE("/leads/:id", leads.Delete)

	listings := handlers.NewListingHandler(st, eng, v)
	v1.GET("/listings", listings.List)
	v1.POST("/listings", listings.Create)
	v1.GET("/listings/:id", listings.Get)
	v1.PUT("/listings/:id", listings.Update)
	v1.DELETE("/listings/:id", listings.Delete)

	interactions := handlers.NewInteractionHandler(st, eng, v)
	v1.POST("/interactions", interactions.Log)
	v1.GET("/interactions", interactions.List)

	fb := handlers.NewFeedbackHandler(eng, v)
	v1.PUT("/feedback", fb.Set)
	v1.GET("/feedback", fb.List)

	tasks := handlers.NewTaskHandler(st, eng, v)
	v1.GET("/tasks", tasks.List)
	v1.POST("/tasks", tasks.Create)
	v1.POST("/tasks/:id/complete", tasks.Complete)

	brokers := handlers.NewBrokerHandler(st, v)
	v1.GET("/brokers", brokers.List)
	v1.POST("/brokers", brokers.Create)
	v1.GET("/brokers/:id", brokers.Get)

	ops := handlers.NewOperationsHandler(eng)
	v1.POST("/rescore", ops.Rescore)
	v1.POST("/touches/reset", ops.ResetTouches)
	v1.POST("/digest", ops.Digest)

	api := humaecho.New(e, openapi.Config(Version))
	handlers.RegisterFocusRoutes(api, handlers.NewFocusHandler(eng))
	handlers.RegisterMatchRoutes(api, handlers.NewMatchesHandler(eng))
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler(eng))
	openapi.RegisterRoutes(e)

	return e
}
