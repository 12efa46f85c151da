package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// CampaignUseCase casos de uso para campañas de email. Los contadores son
// datos declarativos: no hay motor de envío en el sistema.
type CampaignUseCase struct {
	repo         repository.CampaignRepository
	templateRepo repository.TemplateRepository
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(repo repository.CampaignRepository, templateRepo repository.TemplateRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, templateRepo: templateRepo}
}

// Create crea una campaña en estado draft. La plantilla referenciada debe
// existir y customer_ids no puede estar vacío.
func (uc *CampaignUseCase) Create(in dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if in.Name == "" || in.TemplateID == "" || len(in.CustomerIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	template, err := uc.templateRepo.GetByID(in.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}
	campaign := &entity.Campaign{
		ID:          uuid.New().String(),
		Name:        in.Name,
		TemplateID:  in.TemplateID,
		CustomerIDs: in.CustomerIDs,
		Status:      entity.CampaignDraft,
		ScheduledAt: in.ScheduledAt,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

// GetByID obtiene una campaña por ID. (nil, nil) si no existe.
func (uc *CampaignUseCase) GetByID(id string) (*dto.CampaignResponse, error) {
	campaign, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, nil
	}
	return toCampaignResponse(campaign), nil
}

// List lista campañas con paginación.
func (uc *CampaignUseCase) List(limit, offset int) ([]dto.CampaignResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CampaignResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCampaignResponse(c))
	}
	return out, nil
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	if c == nil {
		return nil
	}
	ids := c.CustomerIDs
	if ids == nil {
		ids = []string{}
	}
	return &dto.CampaignResponse{
		ID:           c.ID,
		Name:         c.Name,
		TemplateID:   c.TemplateID,
		CustomerIDs:  ids,
		Status:       c.Status,
		SentCount:    c.SentCount,
		OpenedCount:  c.OpenedCount,
		RepliedCount: c.RepliedCount,
		ScheduledAt:  c.ScheduledAt,
		CreatedAt:    c.CreatedAt,
		CompletedAt:  c.CompletedAt,
	}
}
