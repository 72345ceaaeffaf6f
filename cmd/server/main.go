package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"zollkie/internal/config"
	"zollkie/internal/convert"
	"zollkie/internal/handler"
	"zollkie/internal/ocr"
	"zollkie/internal/port"
	"zollkie/internal/repository/postgres"
	"zollkie/internal/router"
	"zollkie/internal/service"
	s3storage "zollkie/internal/storage/s3"

	_ "zollkie/docs"
	_ "zollkie/internal/ocr/claude"
	_ "zollkie/internal/ocr/openai"
)

// @title Zollkie Extraction API
// @version 1.0
// @description Key-information extraction service for customs export documents
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	jobRepo := postgres.NewJobRepo(db)
	resultRepo := postgres.NewResultRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize page conversion
	pageSource, err := convert.NewGotenbergPageSource(&cfg.Gotenberg)
	if err != nil {
		return fmt.Errorf("failed to initialize page source: %w", err)
	}

	// Initialize vision models
	model, err := buildVisionModel(&cfg.OCR)
	if err != nil {
		return fmt.Errorf("failed to initialize vision model: %w", err)
	}

	// Initialize services
	jobSvc := service.NewJobService(jobRepo, resultRepo, s3Client, &cfg.S3)
	extractionSvc := service.NewExtractionService(jobRepo, resultRepo, s3Client, pageSource, model)

	// Initialize handlers
	documentH := handler.NewDocumentHandler(jobSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(documentH, healthH, cfg.CORS.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the extraction queue worker
	worker := service.NewExtractQueueWorker(jobRepo, extractionSvc, service.ExtractQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		stop()
		<-workerDone
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// Wait for in-flight extractions to finish
	<-workerDone
	log.Printf("Shutdown complete")
	return nil
}

// buildVisionModel constructs the configured primary model and, when a
// secondary provider is configured, wraps both in a fallback chain.
func buildVisionModel(cfg *config.OCRConfig) (port.VisionModel, error) {
	primary, err := ocr.NewModel(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := ocr.NewModel(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return ocr.NewFallbackModel(
		[]port.VisionModel{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
