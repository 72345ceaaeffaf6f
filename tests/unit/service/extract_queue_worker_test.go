package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"zollkie/internal/domain"
	"zollkie/internal/service"
	"zollkie/mocks"
)

func TestExtractQueueWorker_PollsAndDispatches(t *testing.T) {
	jobRepo := new(mocks.MockJobRepository)
	extractionSvc := new(mocks.MockExtractionService)

	job := domain.ExtractionJob{
		ID:       uuid.New(),
		FileName: "doc.pdf",
		Status:   domain.JobStatusProcessing,
	}

	// First poll returns one job, subsequent polls return empty
	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ExtractionJob{job}, nil).Once()
	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ExtractionJob{}, nil).Maybe()

	extractionSvc.On("ExtractJob", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).
		Return().Maybe()

	cfg := service.ExtractQueueConfig{
		PollInterval: 50 * time.Millisecond,
		Concurrency:  2,
	}
	worker := service.NewExtractQueueWorker(jobRepo, extractionSvc, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	// Wait for at least one poll cycle
	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	jobRepo.AssertCalled(t, "ClaimQueued", mock.Anything, mock.AnythingOfType("int"))
	extractionSvc.AssertCalled(t, "ExtractJob", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob"))
}

func TestExtractQueueWorker_StopsOnCancel(t *testing.T) {
	jobRepo := new(mocks.MockJobRepository)
	extractionSvc := new(mocks.MockExtractionService)

	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ExtractionJob{}, nil).Maybe()

	cfg := service.ExtractQueueConfig{
		PollInterval: 20 * time.Millisecond,
		Concurrency:  1,
	}
	worker := service.NewExtractQueueWorker(jobRepo, extractionSvc, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancel")
	}
}

func TestExtractQueueWorker_SurvivesClaimError(t *testing.T) {
	jobRepo := new(mocks.MockJobRepository)
	extractionSvc := new(mocks.MockExtractionService)

	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Return(nil, errors.New("db down")).Maybe()

	cfg := service.ExtractQueueConfig{
		PollInterval: 20 * time.Millisecond,
		Concurrency:  1,
	}
	worker := service.NewExtractQueueWorker(jobRepo, extractionSvc, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	// Several poll cycles with a failing claim must not crash the loop.
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	extractionSvc.AssertNotCalled(t, "ExtractJob", mock.Anything, mock.Anything)
}
