package repository

import "github.com/jhoicas/bidtracker-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) cuando no existe; Delete retorna domain.ErrNotFound
// si el ID no corresponde a ningún registro (señal distinguible de un error de validación).
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(status string, limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
