package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
// Conteos agregados de las cuatro colecciones más las tasas de engagement
// acumuladas de campañas.
type DashboardStatsResponse struct {
	Customers  CustomerStatsDTO   `json:"customers"`
	Campaigns  CampaignStatsDTO   `json:"campaigns"`
	FollowUps  FollowUpStatsDTO   `json:"followups"`
	Templates  TemplateStatsDTO   `json:"templates"`
	Engagement EngagementStatsDTO `json:"engagement"`
}

// CustomerStatsDTO conteos de clientes.
type CustomerStatsDTO struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// CampaignStatsDTO conteos de campañas. Active = draft o sending.
type CampaignStatsDTO struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// FollowUpStatsDTO conteos de follow-ups. Overdue = pending con due_date vencida.
type FollowUpStatsDTO struct {
	Pending int64 `json:"pending"`
	Overdue int64 `json:"overdue"`
}

// TemplateStatsDTO conteos de plantillas.
type TemplateStatsDTO struct {
	Total int64 `json:"total"`
}

// EngagementStatsDTO tasas acumuladas sobre los contadores de campañas,
// en porcentaje con dos decimales. Cero cuando no hay envíos registrados.
type EngagementStatsDTO struct {
	OpenRate  decimal.Decimal `json:"open_rate"`
	ReplyRate decimal.Decimal `json:"reply_rate"`
}
