package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// Ventana del filtro due_soon: follow-ups pendientes que vencen en 7 días.
const dueSoonWindow = 7 * 24 * time.Hour

// FollowUpUseCase casos de uso para recordatorios de seguimiento.
type FollowUpUseCase struct {
	repo         repository.FollowUpRepository
	customerRepo repository.CustomerRepository
}

// NewFollowUpUseCase construye el caso de uso.
func NewFollowUpUseCase(repo repository.FollowUpRepository, customerRepo repository.CustomerRepository) *FollowUpUseCase {
	return &FollowUpUseCase{repo: repo, customerRepo: customerRepo}
}

// Create crea un follow-up pendiente. El cliente referenciado debe existir.
func (uc *FollowUpUseCase) Create(in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	if in.CustomerID == "" || in.TemplateID == "" || in.DueDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	followUp := &entity.FollowUp{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		TemplateID: in.TemplateID,
		DueDate:    in.DueDate,
		Status:     entity.FollowUpPending,
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(followUp); err != nil {
		return nil, err
	}
	return toFollowUpResponse(followUp), nil
}

// List lista follow-ups. Con dueSoon activo filtra los pendientes que vencen
// dentro de los próximos 7 días (ignora el filtro status recibido).
func (uc *FollowUpUseCase) List(status string, dueSoon bool) ([]dto.FollowUpResponse, error) {
	var dueBefore *time.Time
	if dueSoon {
		limit := time.Now().Add(dueSoonWindow)
		dueBefore = &limit
		status = entity.FollowUpPending
	}
	list, err := uc.repo.List(status, dueBefore)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FollowUpResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toFollowUpResponse(f))
	}
	return out, nil
}

func toFollowUpResponse(f *entity.FollowUp) *dto.FollowUpResponse {
	if f == nil {
		return nil
	}
	return &dto.FollowUpResponse{
		ID:          f.ID,
		CustomerID:  f.CustomerID,
		TemplateID:  f.TemplateID,
		DueDate:     f.DueDate,
		Status:      f.Status,
		Notes:       f.Notes,
		CreatedAt:   f.CreatedAt,
		CompletedAt: f.CompletedAt,
	}
}
