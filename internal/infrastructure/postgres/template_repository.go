package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación del puerto TemplateRepository sobre PostgreSQL.
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

// Create persiste una nueva plantilla de email.
func (r *TemplateRepo) Create(t *entity.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (id, name, subject, body, template_type, variables, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Subject, t.Body, t.TemplateType, t.Variables, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID. Devuelve (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(id string) (*entity.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, body, template_type, variables, created_at, updated_at
		FROM email_templates WHERE id = $1`
	var t entity.EmailTemplate
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Subject, &t.Body, &t.TemplateType, &t.Variables, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// List lista plantillas con filtro opcional por tipo.
func (r *TemplateRepo) List(templateType string) ([]*entity.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, body, template_type, variables, created_at, updated_at
		FROM email_templates WHERE ($1 = '' OR template_type = $1)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, templateType)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var templates []*entity.EmailTemplate
	for rows.Next() {
		var t entity.EmailTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.TemplateType, &t.Variables, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

// Update actualiza una plantilla existente. ErrNotFound si el ID no existe.
func (r *TemplateRepo) Update(t *entity.EmailTemplate) error {
	query := `
		UPDATE email_templates SET name = $2, subject = $3, body = $4, template_type = $5, variables = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		t.ID, t.Name, t.Subject, t.Body, t.TemplateType, t.Variables, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una plantilla. ErrNotFound si el ID no existe.
func (r *TemplateRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
