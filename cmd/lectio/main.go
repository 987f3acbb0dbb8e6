package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avermeer/lectio/internal/api"
	"github.com/avermeer/lectio/internal/cli"
	"github.com/avermeer/lectio/internal/config"
	"github.com/avermeer/lectio/internal/db"
	"github.com/avermeer/lectio/internal/repository"
	"github.com/avermeer/lectio/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	var (
		taskRepo    repository.TaskRepo
		topicRepo   repository.TopicRepo
		eventRepo   repository.EventRepo
		metricsRepo repository.MetricsRepo
		applier     repository.PlanApplier
	)

	switch cfg.DBDriver {
	case config.DriverSQLite:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		taskRepo = repository.NewSQLiteTaskRepo(database)
		topicRepo = repository.NewSQLiteTopicRepo(database)
		eventRepo = repository.NewSQLiteEventRepo(database)
		metricsRepo = repository.NewSQLiteMetricsRepo(database)
		applier = repository.NewSQLitePlanApplier(db.NewSQLiteUnitOfWork(database))

	case config.DriverPostgres:
		ctx := context.Background()
		pool, err := db.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer pool.Close()

		taskRepo = repository.NewPostgresTaskRepo(pool)
		topicRepo = repository.NewPostgresTopicRepo(pool)
		eventRepo = repository.NewPostgresEventRepo(pool)
		metricsRepo = repository.NewPostgresMetricsRepo(pool)
		applier = repository.NewPostgresPlanApplier(pool)

	default:
		return fmt.Errorf("unknown LECTIO_DB_DRIVER %q", cfg.DBDriver)
	}

	var observers []service.UseCaseObserver
	if cfg.LogRequests {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	planSvc := service.NewPlanService(taskRepo, topicRepo, eventRepo, observers...)
	applySvc := service.NewApplyService(applier, observers...)
	recommendSvc := service.NewRecommendationService(taskRepo, topicRepo, metricsRepo, observers...)
	metricsSvc := service.NewMetricsService(metricsRepo, observers...)
	catalogSvc := service.NewCatalogService(taskRepo, topicRepo, eventRepo)

	app := &cli.App{
		Plans:      planSvc,
		Applies:    applySvc,
		Recommends: recommendSvc,
		Metrics:    metricsSvc,
		Catalog:    catalogSvc,

		Handler: api.NewHandler(planSvc, applySvc, recommendSvc, metricsSvc, nil),
		Addr:    cfg.Addr,
		UserID:  defaultUserID(),
	}

	// Detect interactive terminal for output formatting decisions.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func defaultUserID() string {
	if v := os.Getenv("LECTIO_USER"); v != "" {
		return v
	}
	return "local"
}
