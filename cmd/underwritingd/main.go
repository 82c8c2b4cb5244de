package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crestbank/underwriting-service/internal/application/usecase"
	"github.com/crestbank/underwriting-service/internal/domain/port"
	"github.com/crestbank/underwriting-service/internal/domain/service"
	"github.com/crestbank/underwriting-service/internal/infrastructure/cache"
	"github.com/crestbank/underwriting-service/internal/infrastructure/config"
	"github.com/crestbank/underwriting-service/internal/infrastructure/kafka"
	grpcPresentation "github.com/crestbank/underwriting-service/internal/presentation/grpc"
	"github.com/crestbank/underwriting-service/internal/presentation/rest"
	"github.com/crestbank/underwriting-service/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		ServiceName: cfg.ServiceName,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})

	logger.Info("starting underwriting-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without /metrics", "error", err)
	}

	// Lending policy, with environment overrides.
	policy := service.DefaultPolicy()
	if cfg.Policy.BaseRatePercent > 0 {
		policy.BaseRatePercent = decimal.NewFromFloat(cfg.Policy.BaseRatePercent)
	}
	if cfg.Policy.PenaltyRatePercentPerMonth > 0 {
		policy.PenaltyRatePercentPerMonth = decimal.NewFromFloat(cfg.Policy.PenaltyRatePercentPerMonth)
	}

	// Event bus.
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()
	publisher := kafka.NewEventPublisher(producer, cfg.Kafka.Topic, logger)

	// Assessment cache: Redis when configured, in-process otherwise.
	var assessmentCache port.AssessmentCache
	if cfg.Cache.RedisAddr != "" {
		redisCache := cache.NewRedisCache(cfg.Cache.RedisAddr, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
		defer redisCache.Close()
		assessmentCache = redisCache
		logger.Info("using redis assessment cache", "addr", cfg.Cache.RedisAddr)
	} else {
		assessmentCache = cache.NewMemoryCache()
		logger.Info("using in-process assessment cache")
	}

	// Domain services.
	scorer := service.NewRiskScorer(policy)
	evaluator := service.NewAffordabilityEvaluator(policy)
	penaltyCalc := service.NewPenaltyCalculator(policy)

	// Use cases.
	quoteUC := usecase.NewQuoteLoanUseCase(publisher, logger)
	scheduleUC := usecase.NewGenerateScheduleUseCase()
	penaltyUC := usecase.NewComputePenaltyUseCase(penaltyCalc)
	riskUC := usecase.NewAssessCreditRiskUseCase(scorer, assessmentCache, publisher, logger)
	affordabilityUC := usecase.NewEvaluateAffordabilityUseCase(evaluator, publisher, logger)

	// gRPC server.
	handler := grpcPresentation.NewUnderwritingHandler(quoteUC, scheduleUC, penaltyUC, riskUC, affordabilityUC, logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks, metrics).
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger).RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("underwriting-service stopped")
}
