package dto

import "time"

// CreateCustomerRequest alta directa de cliente vía API.
type CreateCustomerRequest struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Company string   `json:"company"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
	Notes   string   `json:"notes"`
}

// UpdateCustomerRequest actualización parcial: solo los campos presentes se aplican.
type UpdateCustomerRequest struct {
	Name    *string  `json:"name"`
	Email   *string  `json:"email"`
	Company *string  `json:"company"`
	Phone   *string  `json:"phone"`
	Address *string  `json:"address"`
	Status  *string  `json:"status"`
	Tags    []string `json:"tags"`
	Notes   *string  `json:"notes"`
}

// CustomerResponse representación HTTP de un cliente.
type CustomerResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Company     string     `json:"company"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastContact *time.Time `json:"last_contact,omitempty"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
