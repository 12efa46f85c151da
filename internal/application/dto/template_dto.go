package dto

import "time"

// CreateTemplateRequest alta de plantilla de email. También se usa en PUT
// (actualización completa, como en el resto de la API).
type CreateTemplateRequest struct {
	Name         string   `json:"name"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	TemplateType string   `json:"template_type"`
	Variables    []string `json:"variables"`
}

// TemplateResponse representación HTTP de una plantilla.
type TemplateResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Subject      string    `json:"subject"`
	Body         string    `json:"body"`
	TemplateType string    `json:"template_type"`
	Variables    []string  `json:"variables"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
