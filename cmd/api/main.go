package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"summerfest/backend/internal/config"
	"summerfest/backend/internal/db"
	"summerfest/backend/internal/goal"
	"summerfest/backend/internal/http/handlers"
	"summerfest/backend/internal/http/middleware"
	"summerfest/backend/internal/integrations"
	"summerfest/backend/internal/integrations/eventbrite"
	"summerfest/backend/internal/logging"
	"summerfest/backend/internal/sales"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("log error: %v", err)
	}
	defer func() {
		_ = cleanup()
	}()
	logger = logger.With("service", "api")
	slog.SetDefault(logger)

	ctx := context.Background()

	var goals goal.Store
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("db error", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store := goal.NewPostgresStore(pool, logger)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Error("db schema error", "error", err)
			os.Exit(1)
		}
		goals = store
	} else {
		goals = goal.NewFileStore(cfg.GoalFile, logger)
	}

	client := eventbrite.NewClient(eventbrite.Config{
		BaseURL:    cfg.Eventbrite.BaseURL,
		APIKey:     cfg.Eventbrite.APIKey,
		OAuthToken: cfg.Eventbrite.OAuthToken,
	}, nil, logger)
	if !client.HasCredentials() {
		logger.Warn("eventbrite credentials not configured, serving mock data")
	}

	salesSvc := sales.NewService(client, goals, cfg.Eventbrite.EventID, logger)
	snapshots := integrations.NewSnapshotArchiver(cfg.Snapshot, cfg.S3, logger)

	h := handlers.New(goals, salesSvc, client, snapshots, cfg, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/", h.Root)
	r.Get("/api/goal", h.GetGoal)
	r.Post("/api/goal", h.SetGoal)
	r.Get("/api/metrics", h.GetMetrics)
	r.Get("/api/orders", h.ListOrders)
	r.Get("/api/eventbrite-raw", h.RawEvent)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		logger.Info("api_listening", "addr", cfg.HTTPAddr, "event_id", cfg.Eventbrite.EventID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutdown", "service", "api")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
}
