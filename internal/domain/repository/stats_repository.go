package repository

import (
	"context"
	"time"
)

// CampaignTotals acumulados de contadores de todas las campañas,
// insumo de las tasas de engagement del dashboard.
type CampaignTotals struct {
	Sent    int64
	Opened  int64
	Replied int64
}

// StatsRepository consultas de conteo read-only para el dashboard.
type StatsRepository interface {
	CountCustomers(ctx context.Context, status string) (int64, error)
	CountCampaigns(ctx context.Context, statuses []string) (int64, error)
	CountFollowUps(ctx context.Context, status string, dueBefore *time.Time) (int64, error)
	CountTemplates(ctx context.Context) (int64, error)
	GetCampaignTotals(ctx context.Context) (CampaignTotals, error)
}
