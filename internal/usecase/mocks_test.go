package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

// MockTableGateway
type MockTableGateway struct {
	mock.Mock
}

func (m *MockTableGateway) ListRows(ctx context.Context, tableName string) ([]seatable.Row, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]seatable.Row), args.Error(1)
}

func (m *MockTableGateway) AppendRows(ctx context.Context, tableName string, rows []seatable.Row) error {
	args := m.Called(ctx, tableName, rows)
	return args.Error(0)
}

func (m *MockTableGateway) UpdateRows(ctx context.Context, tableName string, updates []seatable.RowUpdate) error {
	args := m.Called(ctx, tableName, updates)
	return args.Error(0)
}
