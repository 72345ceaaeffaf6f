package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zollkie/internal/domain"
	"zollkie/internal/port"
)

type resultRepo struct {
	db *sqlx.DB
}

// NewResultRepo creates a new PostgreSQL-backed ResultRepository.
func NewResultRepo(db *sqlx.DB) port.ResultRepository {
	return &resultRepo{db: db}
}

func (r *resultRepo) Save(ctx context.Context, jobID uuid.UUID, result json.RawMessage) error {
	// One result document per job; re-extraction replaces the previous run.
	query := `INSERT INTO extraction_results (id, job_id, result, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (job_id) DO UPDATE SET result = EXCLUDED.result, created_at = EXCLUDED.created_at`

	_, err := r.db.ExecContext(ctx, query, uuid.New(), jobID, result, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("resultRepo.Save: %w", err)
	}
	return nil
}

func (r *resultRepo) GetByJobID(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionResult, error) {
	var res domain.ExtractionResult
	err := r.db.GetContext(ctx, &res,
		"SELECT * FROM extraction_results WHERE job_id = $1", jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resultRepo.GetByJobID: %w", err)
	}
	return &res, nil
}
