package entity

import "time"

// Tipos de plantilla de email.
const (
	TemplateProposal = "proposal"
	TemplateFollowUp = "follow_up"
	TemplateGeneral  = "general"
)

// EmailTemplate plantilla de correo reutilizable en campañas y follow-ups.
// Variables lista los nombres de placeholders que espera el cuerpo.
type EmailTemplate struct {
	ID           string
	Name         string
	Subject      string
	Body         string
	TemplateType string // proposal | follow_up | general
	Variables    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidTemplateType indica si s es un tipo de plantilla reconocido.
func ValidTemplateType(s string) bool {
	return s == TemplateProposal || s == TemplateFollowUp || s == TemplateGeneral
}
