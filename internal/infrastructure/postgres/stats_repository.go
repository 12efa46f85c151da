package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de agregación read-only para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountCustomers cuenta clientes, con filtro opcional por estado ("" = todos).
func (r *StatsRepo) CountCustomers(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE ($1 = '' OR status = $1)`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// CountCampaigns cuenta campañas; con statuses nil o vacío cuenta todas.
// Un slice nil viaja a PostgreSQL como NULL, de ahí el guard explícito:
// cardinality(NULL) y ANY(NULL) evalúan a NULL y filtrarían todas las filas.
func (r *StatsRepo) CountCampaigns(ctx context.Context, statuses []string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM campaigns
		 WHERE ($1::text[] IS NULL OR cardinality($1::text[]) = 0 OR status = ANY($1))`, statuses,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count campaigns: %w", err)
	}
	return count, nil
}

// CountFollowUps cuenta follow-ups por estado; dueBefore acota por vencimiento.
func (r *StatsRepo) CountFollowUps(ctx context.Context, status string, dueBefore *time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM follow_ups
		 WHERE ($1 = '' OR status = $1) AND ($2::timestamptz IS NULL OR due_date <= $2)`,
		status, dueBefore,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count follow-ups: %w", err)
	}
	return count, nil
}

// CountTemplates cuenta plantillas de email.
func (r *StatsRepo) CountTemplates(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM email_templates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}

// GetCampaignTotals suma los contadores de envío/apertura/respuesta de todas las campañas.
func (r *StatsRepo) GetCampaignTotals(ctx context.Context) (repository.CampaignTotals, error) {
	var totals repository.CampaignTotals
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(sent_count), 0), COALESCE(SUM(opened_count), 0), COALESCE(SUM(replied_count), 0)
		 FROM campaigns`,
	).Scan(&totals.Sent, &totals.Opened, &totals.Replied)
	if err != nil {
		return repository.CampaignTotals{}, fmt.Errorf("campaign totals: %w", err)
	}
	return totals, nil
}
