package ports

import (
	"context"
	"time"

	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
)

// CustomerReportGenerator genera el PDF del listado de clientes.
type CustomerReportGenerator interface {
	GenerateCustomerReport(ctx context.Context, customers []*entity.Customer, generatedAt time.Time) ([]byte, error)
}
