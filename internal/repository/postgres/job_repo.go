package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zollkie/internal/domain"
	"zollkie/internal/port"
)

type jobRepo struct {
	db *sqlx.DB
}

// NewJobRepo creates a new PostgreSQL-backed JobRepository.
func NewJobRepo(db *sqlx.DB) port.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.ExtractionJob) error {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	query := `INSERT INTO extraction_jobs (
		id, file_name, original_name, file_type, file_size, content_type,
		s3_bucket, s3_key, status, error, queued_at, completed_at,
		created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10, $11, $12,
		$13, $14
	)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.FileName, job.OriginalName, job.FileType, job.FileSize, job.ContentType,
		job.S3Bucket, job.S3Key, job.Status, job.Error, job.QueuedAt, job.CompletedAt,
		job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("jobRepo.Create: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionJob, error) {
	var job domain.ExtractionJob
	err := r.db.GetContext(ctx, &job,
		"SELECT * FROM extraction_jobs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("jobRepo.GetByID: %w", err)
	}
	return &job, nil
}

func (r *jobRepo) MarkQueued(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE extraction_jobs
		 SET status = $1, queued_at = $2, error = '', updated_at = $2
		 WHERE id = $3 AND status IN ($4, $5)`,
		domain.JobStatusQueued, now, id,
		domain.JobStatusUploaded, domain.JobStatusFailed)
	if err != nil {
		return fmt.Errorf("jobRepo.MarkQueued: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("jobRepo.MarkQueued rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotQueueable
	}
	return nil
}

func (r *jobRepo) ClaimQueued(ctx context.Context, limit int) ([]domain.ExtractionJob, error) {
	// SKIP LOCKED keeps concurrent workers from claiming the same rows.
	var jobs []domain.ExtractionJob
	err := r.db.SelectContext(ctx, &jobs,
		`UPDATE extraction_jobs
		 SET status = $1, updated_at = $2
		 WHERE id IN (
		     SELECT id FROM extraction_jobs
		     WHERE status = $3
		     ORDER BY queued_at ASC
		     LIMIT $4
		     FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.JobStatusProcessing, time.Now().UTC(), domain.JobStatusQueued, limit)
	if err != nil {
		return nil, fmt.Errorf("jobRepo.ClaimQueued: %w", err)
	}
	return jobs, nil
}

func (r *jobRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE extraction_jobs
		 SET status = $1, completed_at = $2, updated_at = $2
		 WHERE id = $3`,
		domain.JobStatusCompleted, now, id)
	if err != nil {
		return fmt.Errorf("jobRepo.MarkCompleted: %w", err)
	}
	return nil
}

func (r *jobRepo) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`UPDATE extraction_jobs
		 SET status = $1, error = $2, updated_at = $3
		 WHERE id = $4`,
		domain.JobStatusFailed, errMsg, now, id)
	if err != nil {
		return fmt.Errorf("jobRepo.MarkFailed: %w", err)
	}
	return nil
}
