package dto

import "time"

// CreateFollowUpRequest alta de recordatorio de seguimiento.
type CreateFollowUpRequest struct {
	CustomerID string    `json:"customer_id"`
	TemplateID string    `json:"template_id"`
	DueDate    time.Time `json:"due_date"`
	Notes      string    `json:"notes"`
}

// FollowUpResponse representación HTTP de un follow-up.
type FollowUpResponse struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	TemplateID  string     `json:"template_id"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
