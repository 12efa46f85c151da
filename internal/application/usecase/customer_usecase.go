package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	"github.com/jhoicas/bidtracker-api/internal/domain/extract"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente por alta directa. Name y un email con gramática
// válida son obligatorios; el estado inicial es active.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || !extract.IsValidEmail(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Phone:     in.Phone,
		Address:   in.Address,
		Status:    entity.CustomerActive,
		Tags:      tags,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con filtro opcional por estado y paginación.
func (uc *CustomerUseCase) List(status string, limit, offset int) (*dto.CustomerListResponse, error) {
	if status != "" && !entity.ValidCustomerStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial: solo aplica los campos presentes y refresca
// UpdatedAt. (nil, nil) si el cliente no existe.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil {
		if !extract.IsValidEmail(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		customer.Email = *in.Email
	}
	if in.Company != nil {
		customer.Company = *in.Company
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Status != nil {
		if !entity.ValidCustomerStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		customer.Status = *in.Status
	}
	if len(in.Tags) > 0 {
		customer.Tags = in.Tags
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID. Retorna domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Company:     c.Company,
		Phone:       c.Phone,
		Address:     c.Address,
		Status:      c.Status,
		Tags:        tags,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		LastContact: c.LastContact,
	}
}
