package dto

import "time"

// CreateCampaignRequest alta de campaña sobre una plantilla y clientes existentes.
type CreateCampaignRequest struct {
	Name        string     `json:"name"`
	TemplateID  string     `json:"template_id"`
	CustomerIDs []string   `json:"customer_ids"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// CampaignResponse representación HTTP de una campaña.
type CampaignResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TemplateID   string     `json:"template_id"`
	CustomerIDs  []string   `json:"customer_ids"`
	Status       string     `json:"status"`
	SentCount    int        `json:"sent_count"`
	OpenedCount  int        `json:"opened_count"`
	RepliedCount int        `json:"replied_count"`
	ScheduledAt  *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
