package extract

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
)

// Normalize convierte un RawFieldMap en un Customer validado listo para
// persistir. Si falta el nombre se deriva de la parte local del email (tal
// cual, sin title case). Un email ausente o con gramática inválida falla la
// validación; el error envuelve domain.ErrInvalidInput y lleva los datos
// crudos para que el caller los registre, omita el registro y continúe con
// el resto del lote.
func Normalize(raw RawFieldMap) (*entity.Customer, error) {
	name := raw.Name
	if name == "" {
		name = LocalPart(raw.Email)
	}
	if !IsValidEmail(raw.Email) {
		return nil, fmt.Errorf("email inválido %q (name=%q): %w", raw.Email, raw.Name, domain.ErrInvalidInput)
	}
	if name == "" {
		return nil, fmt.Errorf("nombre vacío para %q: %w", raw.Email, domain.ErrInvalidInput)
	}
	now := time.Now()
	return &entity.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     raw.Email,
		Company:   raw.Company,
		Phone:     raw.Phone,
		Address:   raw.Address,
		Status:    entity.CustomerActive,
		Tags:      []string{},
		Notes:     raw.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
