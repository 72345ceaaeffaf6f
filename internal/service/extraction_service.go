package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"zollkie/internal/domain"
	"zollkie/internal/extraction"
	"zollkie/internal/port"
)

// ExtractionService runs the extraction pipeline for claimed jobs.
type ExtractionService interface {
	ExtractJob(ctx context.Context, job *domain.ExtractionJob)
}

type extractionService struct {
	jobRepo    port.JobRepository
	resultRepo port.ResultRepository
	storage    port.ObjectStorage
	pages      port.PageSource
	model      port.VisionModel
}

// NewExtractionService creates a new ExtractionService implementation.
func NewExtractionService(
	jobRepo port.JobRepository,
	resultRepo port.ResultRepository,
	storage port.ObjectStorage,
	pages port.PageSource,
	model port.VisionModel,
) ExtractionService {
	return &extractionService{
		jobRepo:    jobRepo,
		resultRepo: resultRepo,
		storage:    storage,
		pages:      pages,
		model:      model,
	}
}

// ExtractJob runs the whole pipeline for one claimed job and persists the
// outcome. Errors are terminal for the job: the job row is marked failed
// with the error string and the next queue attempt starts fresh.
func (s *extractionService) ExtractJob(ctx context.Context, job *domain.ExtractionJob) {
	result, err := s.extract(ctx, job)
	if err != nil {
		log.Printf("extractionService.ExtractJob: job %s failed: %v", job.ID, err)
		if markErr := s.jobRepo.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			log.Printf("extractionService.ExtractJob: marking job %s failed: %v", job.ID, markErr)
		}
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("extractionService.ExtractJob: job %s result marshal: %v", job.ID, err)
		if markErr := s.jobRepo.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			log.Printf("extractionService.ExtractJob: marking job %s failed: %v", job.ID, markErr)
		}
		return
	}

	if err := s.resultRepo.Save(ctx, job.ID, payload); err != nil {
		log.Printf("extractionService.ExtractJob: job %s result save: %v", job.ID, err)
		if markErr := s.jobRepo.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			log.Printf("extractionService.ExtractJob: marking job %s failed: %v", job.ID, markErr)
		}
		return
	}

	if err := s.jobRepo.MarkCompleted(ctx, job.ID); err != nil {
		log.Printf("extractionService.ExtractJob: marking job %s completed: %v", job.ID, err)
		return
	}

	log.Printf("extractionService.ExtractJob: job %s completed (%d pages)", job.ID, len(result.ExtractedData))
}

func (s *extractionService) extract(ctx context.Context, job *domain.ExtractionJob) (*extraction.JobResult, error) {
	fileBytes, err := s.storage.Download(ctx, job.S3Bucket, job.S3Key)
	if err != nil {
		return nil, fmt.Errorf("downloading file: %w", err)
	}

	pages, err := s.pages.Pages(ctx, fileBytes, job.ContentType)
	if err != nil {
		return nil, fmt.Errorf("preparing pages: %w", err)
	}

	results := make([]extraction.PageResult, 0, len(pages))
	for i, page := range pages {
		out, err := s.model.Extract(ctx, port.VisionInput{
			PageBytes:   page.Bytes,
			ContentType: page.ContentType,
		})
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", i+1, err)
		}
		results = append(results, extraction.ProcessPage(out.RawText, out.ModelUsed, time.Now()))
	}

	return &extraction.JobResult{
		JobID:         job.ID.String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		ExtractedData: results,
		Status:        string(domain.JobStatusCompleted),
	}, nil
}
