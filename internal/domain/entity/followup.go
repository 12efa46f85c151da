package entity

import "time"

// Estados posibles de un follow-up.
const (
	FollowUpPending   = "pending"
	FollowUpSent      = "sent"
	FollowUpCompleted = "completed"
	FollowUpCancelled = "cancelled"
)

// FollowUp recordatorio de seguimiento a un cliente con una plantilla asociada.
type FollowUp struct {
	ID          string
	CustomerID  string
	TemplateID  string
	DueDate     time.Time
	Status      string // pending | sent | completed | cancelled
	Notes       string
	CreatedAt   time.Time
	CompletedAt *time.Time
}
