package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
)

// Sin campo name, el nombre se deriva de la parte local del email tal cual
// (sin title case, a diferencia del fallback de documentos).
func TestNormalize_NombreDesdeParteLocal(t *testing.T) {
	c, err := Normalize(RawFieldMap{Email: "jane.doe@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", c.Name)
	assert.Equal(t, "jane.doe@example.com", c.Email)
}

// Email con gramática inválida falla la normalización envolviendo ErrInvalidInput.
func TestNormalize_EmailInvalido(t *testing.T) {
	casos := []string{"", "sin-arroba", "a@b", "a@b.c", "dos@@x.com", "con espacio@x.com"}
	for _, email := range casos {
		_, err := Normalize(RawFieldMap{Name: "Alguien", Email: email})
		require.Error(t, err, "email %q debería fallar", email)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "email %q debe envolver ErrInvalidInput", email)
	}
}

// Valores por defecto del registro construido: estado active, tags vacíos,
// timestamps asignados, ID generado.
func TestNormalize_ValoresPorDefecto(t *testing.T) {
	c, err := Normalize(RawFieldMap{Name: "Laura", Email: "laura@acme.co"})
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerActive, c.Status)
	assert.NotNil(t, c.Tags)
	assert.Empty(t, c.Tags)
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.IsZero())
	assert.Nil(t, c.LastContact)
}

// Normalizar dos veces el mismo mapa produce registros idénticos en todos los
// campos salvo identificador y timestamps.
func TestNormalize_DeterministaSalvoIDyTimestamps(t *testing.T) {
	raw := RawFieldMap{
		Name:    "Carlos",
		Email:   "carlos@beta.io",
		Company: "Beta",
		Phone:   "555-1234",
		Address: "Calle 10 #5-23",
		Notes:   "referido",
	}
	a, err := Normalize(raw)
	require.NoError(t, err)
	b, err := Normalize(raw)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Email, b.Email)
	assert.Equal(t, a.Company, b.Company)
	assert.Equal(t, a.Phone, b.Phone)
	assert.Equal(t, a.Address, b.Address)
	assert.Equal(t, a.Notes, b.Notes)
	assert.Equal(t, a.Status, b.Status)
	assert.Equal(t, a.Tags, b.Tags)
}

// Un email válido garantiza parte local no vacía, así que el nombre derivado
// nunca queda vacío en un registro normalizado.
func TestNormalize_NuncaNombreVacio(t *testing.T) {
	c, err := Normalize(RawFieldMap{Email: "x@dominio.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.Name)
}
