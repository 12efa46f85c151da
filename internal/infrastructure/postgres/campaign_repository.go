package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo implementación del puerto CampaignRepository sobre PostgreSQL.
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

// Create persiste una nueva campaña. Los IDs de clientes van en un array TEXT[].
func (r *CampaignRepo) Create(c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, name, template_id, customer_ids, status, sent_count, opened_count, replied_count, scheduled_at, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.TemplateID, c.CustomerIDs, c.Status,
		c.SentCount, c.OpenedCount, c.RepliedCount, c.ScheduledAt, c.CreatedAt, c.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return nil
}

// GetByID obtiene una campaña por ID. Devuelve (nil, nil) si no existe.
func (r *CampaignRepo) GetByID(id string) (*entity.Campaign, error) {
	query := `
		SELECT id, name, template_id, customer_ids, status, sent_count, opened_count, replied_count, scheduled_at, created_at, completed_at
		FROM campaigns WHERE id = $1`
	var c entity.Campaign
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.TemplateID, &c.CustomerIDs, &c.Status,
		&c.SentCount, &c.OpenedCount, &c.RepliedCount, &c.ScheduledAt, &c.CreatedAt, &c.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return &c, nil
}

// List lista campañas ordenadas por creación descendente, con paginación.
func (r *CampaignRepo) List(limit, offset int) ([]*entity.Campaign, error) {
	query := `
		SELECT id, name, template_id, customer_ids, status, sent_count, opened_count, replied_count, scheduled_at, created_at, completed_at
		FROM campaigns ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(
			&c.ID, &c.Name, &c.TemplateID, &c.CustomerIDs, &c.Status,
			&c.SentCount, &c.OpenedCount, &c.RepliedCount, &c.ScheduledAt, &c.CreatedAt, &c.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		campaigns = append(campaigns, &c)
	}
	return campaigns, rows.Err()
}
