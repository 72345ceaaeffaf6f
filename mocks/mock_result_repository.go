package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"zollkie/internal/domain"
)

// MockResultRepository is a mock implementation of port.ResultRepository.
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Save(ctx context.Context, jobID uuid.UUID, result json.RawMessage) error {
	args := m.Called(ctx, jobID, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}
