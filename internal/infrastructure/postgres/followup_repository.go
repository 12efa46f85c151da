package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

var _ repository.FollowUpRepository = (*FollowUpRepo)(nil)

// FollowUpRepo implementación del puerto FollowUpRepository sobre PostgreSQL.
type FollowUpRepo struct {
	q Querier
}

// NewFollowUpRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFollowUpRepository(q Querier) *FollowUpRepo {
	return &FollowUpRepo{q: q}
}

// Create persiste un nuevo follow-up.
func (r *FollowUpRepo) Create(f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, customer_id, template_id, due_date, status, notes, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.CustomerID, f.TemplateID, f.DueDate, f.Status, f.Notes, f.CreatedAt, f.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert follow-up: %w", err)
	}
	return nil
}

// List lista follow-ups con filtros opcionales por estado y fecha límite,
// ordenados por vencimiento ascendente.
func (r *FollowUpRepo) List(status string, dueBefore *time.Time) ([]*entity.FollowUp, error) {
	query := `
		SELECT id, customer_id, template_id, due_date, status, notes, created_at, completed_at
		FROM follow_ups
		WHERE ($1 = '' OR status = $1) AND ($2::timestamptz IS NULL OR due_date <= $2)
		ORDER BY due_date ASC`
	rows, err := r.q.Query(context.Background(), query, status, dueBefore)
	if err != nil {
		return nil, fmt.Errorf("list follow-ups: %w", err)
	}
	defer rows.Close()

	var followUps []*entity.FollowUp
	for rows.Next() {
		var f entity.FollowUp
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.TemplateID, &f.DueDate, &f.Status, &f.Notes, &f.CreatedAt, &f.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan follow-up: %w", err)
		}
		followUps = append(followUps, &f)
	}
	return followUps, rows.Err()
}
