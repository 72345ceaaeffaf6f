package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"zollkie/internal/port"
)

// MockPageSource is a mock implementation of port.PageSource.
type MockPageSource struct {
	mock.Mock
}

func (m *MockPageSource) Pages(ctx context.Context, fileBytes []byte, contentType string) ([]port.Page, error) {
	args := m.Called(ctx, fileBytes, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.Page), args.Error(1)
}
