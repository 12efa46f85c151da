package entity

import "time"

// Estados posibles de un cliente.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
	CustomerProspect = "prospect"
)

// Customer representa un cliente del CRM. Email es único y obligatorio;
// Name nunca queda vacío en un registro persistido (la importación lo deriva
// de la parte local del email si falta).
type Customer struct {
	ID          string
	Name        string
	Email       string
	Company     string
	Phone       string
	Address     string
	Status      string // active | inactive | prospect
	Tags        []string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastContact *time.Time
}

// ValidCustomerStatus indica si s es un estado de cliente reconocido.
func ValidCustomerStatus(s string) bool {
	return s == CustomerActive || s == CustomerInactive || s == CustomerProspect
}
