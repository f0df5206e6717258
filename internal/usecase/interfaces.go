package usecase

import (
	"context"

	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

// TableGateway is the slice of the SeaTable client the usecases consume.
type TableGateway interface {
	ListRows(ctx context.Context, tableName string) ([]seatable.Row, error)
	AppendRows(ctx context.Context, tableName string, rows []seatable.Row) error
	UpdateRows(ctx context.Context, tableName string, updates []seatable.RowUpdate) error
}
