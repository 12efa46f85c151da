package entity

import "time"

// Estados posibles de una campaña.
const (
	CampaignDraft   = "draft"
	CampaignSending = "sending"
	CampaignSent    = "sent"
	CampaignFailed  = "failed"
)

// Campaign campaña de correo sobre una plantilla y un conjunto de clientes.
// Los contadores son datos declarativos; el envío real queda fuera del sistema.
type Campaign struct {
	ID           string
	Name         string
	TemplateID   string
	CustomerIDs  []string
	Status       string // draft | sending | sent | failed
	SentCount    int
	OpenedCount  int
	RepliedCount int
	ScheduledAt  *time.Time
	CreatedAt    time.Time
	CompletedAt  *time.Time
}
