package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zollkie/internal/domain"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractJob(ctx context.Context, job *domain.ExtractionJob) {
	m.Called(ctx, job)
}
