package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen de conteos del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only). No toca las tablas
// directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsResponse.
//
// Cuatro goroutines en paralelo, una por colección:
//  1. clientes: total + active
//  2. campañas: total + active (draft|sending) + acumulados de contadores
//  3. follow-ups: pending + overdue (pending con due_date vencida)
//  4. plantillas: total
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	type customersResult struct {
		total, active int64
		err           error
	}
	type campaignsResult struct {
		total, active int64
		totals        repository.CampaignTotals
		err           error
	}
	type followUpsResult struct {
		pending, overdue int64
		err              error
	}
	type templatesResult struct {
		total int64
		err   error
	}

	customersCh := make(chan customersResult, 1)
	campaignsCh := make(chan campaignsResult, 1)
	followUpsCh := make(chan followUpsResult, 1)
	templatesCh := make(chan templatesResult, 1)

	go func() {
		total, err := uc.statsRepo.CountCustomers(ctx, "")
		if err != nil {
			customersCh <- customersResult{err: err}
			return
		}
		active, err := uc.statsRepo.CountCustomers(ctx, entity.CustomerActive)
		customersCh <- customersResult{total: total, active: active, err: err}
	}()
	go func() {
		total, err := uc.statsRepo.CountCampaigns(ctx, nil)
		if err != nil {
			campaignsCh <- campaignsResult{err: err}
			return
		}
		active, err := uc.statsRepo.CountCampaigns(ctx, []string{entity.CampaignDraft, entity.CampaignSending})
		if err != nil {
			campaignsCh <- campaignsResult{err: err}
			return
		}
		totals, err := uc.statsRepo.GetCampaignTotals(ctx)
		campaignsCh <- campaignsResult{total: total, active: active, totals: totals, err: err}
	}()
	go func() {
		pending, err := uc.statsRepo.CountFollowUps(ctx, entity.FollowUpPending, nil)
		if err != nil {
			followUpsCh <- followUpsResult{err: err}
			return
		}
		now := time.Now()
		overdue, err := uc.statsRepo.CountFollowUps(ctx, entity.FollowUpPending, &now)
		followUpsCh <- followUpsResult{pending: pending, overdue: overdue, err: err}
	}()
	go func() {
		total, err := uc.statsRepo.CountTemplates(ctx)
		templatesCh <- templatesResult{total: total, err: err}
	}()

	customers := <-customersCh
	campaigns := <-campaignsCh
	followUps := <-followUpsCh
	templates := <-templatesCh

	for _, err := range []error{customers.err, campaigns.err, followUps.err, templates.err} {
		if err != nil {
			return nil, err
		}
	}

	return &dto.DashboardStatsResponse{
		Customers: dto.CustomerStatsDTO{Total: customers.total, Active: customers.active},
		Campaigns: dto.CampaignStatsDTO{Total: campaigns.total, Active: campaigns.active},
		FollowUps: dto.FollowUpStatsDTO{Pending: followUps.pending, Overdue: followUps.overdue},
		Templates: dto.TemplateStatsDTO{Total: templates.total},
		Engagement: dto.EngagementStatsDTO{
			OpenRate:  rate(campaigns.totals.Opened, campaigns.totals.Sent),
			ReplyRate: rate(campaigns.totals.Replied, campaigns.totals.Sent),
		},
	}, nil
}

// rate devuelve parte/total en porcentaje con dos decimales; cero si total es 0.
func rate(part, total int64) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(part).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
