package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// TemplateUseCase casos de uso CRUD para plantillas de email.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// Create crea una plantilla. TemplateType vacío queda en proposal.
func (uc *TemplateUseCase) Create(in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if in.Name == "" || in.Subject == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TemplateType == "" {
		in.TemplateType = entity.TemplateProposal
	}
	if !entity.ValidTemplateType(in.TemplateType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	variables := in.Variables
	if variables == nil {
		variables = []string{}
	}
	template := &entity.EmailTemplate{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Subject:      in.Subject,
		Body:         in.Body,
		TemplateType: in.TemplateType,
		Variables:    variables,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(template); err != nil {
		return nil, err
	}
	return toTemplateResponse(template), nil
}

// GetByID obtiene una plantilla por ID. (nil, nil) si no existe.
func (uc *TemplateUseCase) GetByID(id string) (*dto.TemplateResponse, error) {
	template, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}
	return toTemplateResponse(template), nil
}

// List lista plantillas con filtro opcional por tipo.
func (uc *TemplateUseCase) List(templateType string) ([]dto.TemplateResponse, error) {
	if templateType != "" && !entity.ValidTemplateType(templateType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(templateType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TemplateResponse, 0, len(list))
	for _, tpl := range list {
		out = append(out, *toTemplateResponse(tpl))
	}
	return out, nil
}

// Update actualización completa de la plantilla (PUT), refresca UpdatedAt.
// (nil, nil) si no existe.
func (uc *TemplateUseCase) Update(id string, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	template, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, nil
	}
	if in.Name == "" || in.Subject == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TemplateType == "" {
		in.TemplateType = entity.TemplateProposal
	}
	if !entity.ValidTemplateType(in.TemplateType) {
		return nil, domain.ErrInvalidInput
	}
	template.Name = in.Name
	template.Subject = in.Subject
	template.Body = in.Body
	template.TemplateType = in.TemplateType
	if in.Variables != nil {
		template.Variables = in.Variables
	}
	template.UpdatedAt = time.Now()
	if err := uc.repo.Update(template); err != nil {
		return nil, err
	}
	return toTemplateResponse(template), nil
}

// Delete elimina una plantilla por ID. Retorna domain.ErrNotFound si no existe.
func (uc *TemplateUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTemplateResponse(t *entity.EmailTemplate) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	variables := t.Variables
	if variables == nil {
		variables = []string{}
	}
	return &dto.TemplateResponse{
		ID:           t.ID,
		Name:         t.Name,
		Subject:      t.Subject,
		Body:         t.Body,
		TemplateType: t.TemplateType,
		Variables:    variables,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
