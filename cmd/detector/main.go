package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"trendscope/internal/config"
	"trendscope/internal/extractor"
	"trendscope/internal/publisher"
	"trendscope/internal/scheduler"
	"trendscope/internal/service"
	"trendscope/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	workspace := flag.String("workspace", "", "run detection for a single workspace")
	once := flag.Bool("once", false, "run one detection pass and exit")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	contentStore := postgres.NewContentStore(db)
	trendStore := postgres.NewTrendStore(db)
	snapshotStore := postgres.NewSnapshotStore(db)
	txManager := postgres.NewTransactionManager(db)

	topicExtractor := extractor.New(cfg.Detection.ClusteringSeed, logger)

	detectionService := service.NewDetectionService(
		contentStore,
		trendStore,
		snapshotStore,
		topicExtractor,
		txManager,
		rabbitMQ,
		logger,
		cfg.Detection,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *once {
		runOnce(ctx, detectionService, *workspace, logger)
		return
	}

	workspaces := cfg.Detection.Workspaces
	if *workspace != "" {
		workspaces = []string{*workspace}
	}
	if len(workspaces) == 0 {
		logger.Error("no workspaces configured")
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(detectionService, workspaces, cfg.Detection.Interval, logger)

	logger.Info("starting trend detector",
		"workspaces", len(workspaces),
		"interval", cfg.Detection.Interval,
		"window_days", cfg.Detection.WindowDays,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func runOnce(ctx context.Context, svc *service.DetectionService, workspace string, logger *slog.Logger) {
	if workspace == "" {
		logger.Error("-once requires -workspace")
		os.Exit(1)
	}

	trends, summary, err := svc.Detect(ctx, service.DetectParams{WorkspaceID: workspace})
	if err != nil {
		logger.Error("detection failed", "workspace_id", workspace, "error", err)
		os.Exit(1)
	}

	logger.Info("detection completed",
		"workspace_id", workspace,
		"content_items", summary.ContentItemsAnalyzed,
		"topics_found", summary.TopicsFound,
		"trends_detected", summary.TrendsDetected,
		"duration", summary.Duration,
	)
	for i := range trends {
		logger.Info("trend",
			"rank", i+1,
			"topic", trends[i].Topic,
			"score", trends[i].StrengthScore,
			"confidence", trends[i].Confidence,
			"mentions", trends[i].MentionCount,
			"velocity", trends[i].Velocity,
			"sources", trends[i].SourceCount,
		)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
