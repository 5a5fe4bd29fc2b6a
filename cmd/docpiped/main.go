package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	docpipev1 "github.com/kamil-urbanek/docpipe/gen/proto/docpipe/v1"
	"github.com/kamil-urbanek/docpipe/internal/common"
	"github.com/kamil-urbanek/docpipe/internal/export"
	"github.com/kamil-urbanek/docpipe/internal/extract"
	"github.com/kamil-urbanek/docpipe/internal/ingest"
	"github.com/kamil-urbanek/docpipe/internal/pipeline"
	"github.com/kamil-urbanek/docpipe/internal/repository"
	"github.com/kamil-urbanek/docpipe/internal/repository/entdb"
	"github.com/kamil-urbanek/docpipe/internal/server"
	"github.com/kamil-urbanek/docpipe/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := entdb.Open(ctx, entdb.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer entdb.Close(entc, pool, logger)

	if err := entdb.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, logger)
	if err != nil {
		logger.Error("failed to open storage bucket", "bucket", cfg.Storage.Bucket, "error", err)
		os.Exit(1)
	}

	extractor, err := buildExtractor(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build extractor", "error", err)
		os.Exit(1)
	}

	docs := entdb.NewDocumentRepository(entc, logger)
	logs := entdb.NewProcessingLogRepository(entc, logger)
	forms := entdb.NewFormRepository(entc, logger)

	policy := pipeline.BackoffPolicy{
		MaxRetries: cfg.Pipeline.MaxRetries,
		BaseDelay:  cfg.Pipeline.RetryBaseDelay,
		Factor:     cfg.Pipeline.RetryBackoffFactor,
	}
	metrics := pipeline.NewMetrics()
	workerCfg := pipeline.WorkerConfig{
		BatchSize:  cfg.Pipeline.BatchSize,
		BatchPause: cfg.Pipeline.BatchPause,
		OpTimeout:  cfg.Pipeline.OpTimeout,
	}

	scheduler := pipeline.NewScheduler(docs, logs, policy, logger)
	worker := pipeline.NewWorker(docs, logs, store, extractor, scheduler, workerCfg, metrics, logger)
	reaper := pipeline.NewReaper(docs, logs, policy, cfg.Pipeline.StuckThreshold, metrics, logger)
	applier := pipeline.NewApplier(docs, forms, logs, metrics, logger)
	batchApplier := pipeline.NewBatchApplier(docs, applier, workerCfg, logger)
	reporter := pipeline.NewReporter(docs, logs, cfg.Pipeline.StuckThreshold, metrics, logger)
	exporter := export.NewService(docs, logger)

	// background sweeps
	go runEvery(ctx, cfg.Pipeline.WorkerInterval, func(tickCtx context.Context) {
		if _, err := worker.RunSweep(tickCtx); err != nil {
			logger.Error("scheduled worker sweep failed", "error", err)
		}
	})
	go runEvery(ctx, cfg.Pipeline.ReaperInterval, func(tickCtx context.Context) {
		if _, err := reaper.ReapStuck(tickCtx); err != nil {
			logger.Error("scheduled reaper sweep failed", "error", err)
		}
	})

	if cfg.Ingest.WatchRoot != "" {
		if err := startIngest(ctx, cfg, docs, store, logger); err != nil {
			logger.Error("failed to start ingest watcher", "error", err)
			os.Exit(1)
		}
	}

	if cfg.Server.MetricsAddr != "" {
		go serveMetrics(cfg.Server.MetricsAddr, logger)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(server.RequestIDInterceptor(logger)))
	svc := server.NewPipelineService(docs, worker, reaper, scheduler, applier, batchApplier, reporter, exporter, logger)
	docpipev1.RegisterPipelineServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	logger.Info("docpipe listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}

func buildExtractor(ctx context.Context, cfg *common.Config, logger *slog.Logger) (extract.Extractor, error) {
	if cfg.Extraction.ProjectID != "" {
		return extract.NewVertexExtractor(ctx, cfg.Extraction.ProjectID, cfg.Extraction.Region, cfg.Extraction.Model, logger)
	}
	logger.Warn("EXTRACT_PROJECT_ID not set, using local tesseract extraction")
	return extract.NewTesseractExtractor(extract.TesseractConfig{
		TessdataDir: cfg.Extraction.TessdataDir,
	}, logger), nil
}

func startIngest(ctx context.Context, cfg *common.Config, docs repository.DocumentRepository, store *storage.GCSStore, logger *slog.Logger) error {
	caseID, err := uuid.Parse(cfg.Ingest.CaseID)
	if err != nil {
		return err
	}
	paths, _, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Ingest.WatchRoot},
		InitialScan: true,
		Debounce:    cfg.Ingest.Debounce,
	}, logger)
	if err != nil {
		return err
	}
	svc := ingest.NewService(docs, store, cfg.Ingest.AutoEnqueue, logger)
	go svc.Run(ctx, caseID, paths)
	logger.Info("ingest watcher started", "root", cfg.Ingest.WatchRoot, "case_id", caseID)
	return nil
}

func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("metrics listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics serve error", "error", err)
	}
}

func runEvery(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}
