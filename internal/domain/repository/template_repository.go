package repository

import "github.com/jhoicas/bidtracker-api/internal/domain/entity"

// TemplateRepository define el puerto de persistencia para EmailTemplate.
type TemplateRepository interface {
	Create(template *entity.EmailTemplate) error
	GetByID(id string) (*entity.EmailTemplate, error)
	List(templateType string) ([]*entity.EmailTemplate, error)
	Update(template *entity.EmailTemplate) error
	Delete(id string) error
}
