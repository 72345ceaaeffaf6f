package port

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"zollkie/internal/domain"
)

// JobRepository persists extraction jobs.
type JobRepository interface {
	Create(ctx context.Context, job *domain.ExtractionJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionJob, error)
	MarkQueued(ctx context.Context, id uuid.UUID) error
	// ClaimQueued atomically moves up to limit queued jobs to processing and
	// returns them. Concurrent callers never claim the same job.
	ClaimQueued(ctx context.Context, limit int) ([]domain.ExtractionJob, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
}

// ResultRepository persists one result document per completed job.
type ResultRepository interface {
	Save(ctx context.Context, jobID uuid.UUID, result json.RawMessage) error
	GetByJobID(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionResult, error)
}
