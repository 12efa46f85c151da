package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/bidtracker-api/internal/application/ports"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// Tope de clientes incluidos en el reporte PDF.
const reportMaxCustomers = 500

// ReportUseCase genera el reporte PDF del listado de clientes.
type ReportUseCase struct {
	customerRepo repository.CustomerRepository
	generator    ports.CustomerReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(customerRepo repository.CustomerRepository, generator ports.CustomerReportGenerator) *ReportUseCase {
	return &ReportUseCase{customerRepo: customerRepo, generator: generator}
}

// CustomersPDF genera el PDF con los clientes (filtro opcional por estado).
func (uc *ReportUseCase) CustomersPDF(ctx context.Context, status string) ([]byte, error) {
	if status != "" && !entity.ValidCustomerStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	customers, err := uc.customerRepo.List(status, reportMaxCustomers, 0)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCustomerReport(ctx, customers, time.Now())
}
