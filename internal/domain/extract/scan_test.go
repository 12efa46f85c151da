package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// ScanText: pase estructurado clave:valor
// ──────────────────────────────────────────────────────────────────────────────

// Dos bloques separados por línea en blanco, cada uno con Name/Email/Company
// → exactamente 2 mapas con los tres campos.
func TestScanText_DosBloquesEstructurados(t *testing.T) {
	text := strings.Join([]string{
		"Customer 1:",
		"Name: John Smith",
		"Email: john.smith@example.com",
		"Company: ABC Corp",
		"",
		"Customer 2:",
		"Name: Jane Doe",
		"Email: jane.doe@example.com",
		"Company: XYZ Inc",
		"",
	}, "\n")

	records := ScanText(text)
	require.Len(t, records, 2)

	assert.Equal(t, "John Smith", records[0].Name)
	assert.Equal(t, "john.smith@example.com", records[0].Email)
	assert.Equal(t, "ABC Corp", records[0].Company)

	assert.Equal(t, "Jane Doe", records[1].Name)
	assert.Equal(t, "jane.doe@example.com", records[1].Email)
	assert.Equal(t, "XYZ Inc", records[1].Company)
}

// El bloque final se emite aunque el texto no termine en línea en blanco.
func TestScanText_SinLineaEnBlancoFinal(t *testing.T) {
	text := "Name: Ana\nEmail: ana@test.co"
	records := ScanText(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Ana", records[0].Name)
	assert.Equal(t, "ana@test.co", records[0].Email)
}

// Un bloque sin email no se emite; el siguiente bloque no hereda sus campos.
func TestScanText_BloqueSinEmailSeDescarta(t *testing.T) {
	text := strings.Join([]string{
		"Name: Sin Correo",
		"Company: Fantasma SAS",
		"",
		"Name: Con Correo",
		"Email: ok@dominio.com",
		"",
	}, "\n")

	records := ScanText(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Con Correo", records[0].Name)
	assert.Empty(t, records[0].Company, "el bloque nuevo no debe heredar campos del descartado")
}

// Líneas sin dos puntos y claves desconocidas se ignoran sin error.
func TestScanText_LineasIrrelevantesIgnoradas(t *testing.T) {
	text := strings.Join([]string{
		"Listado de contactos importantes",
		"Cargo: Gerente",
		"name: pepe",
		"email: pepe@acme.io",
		"Telefono fijo 555-0000",
	}, "\n")

	records := ScanText(text)
	require.Len(t, records, 1)
	assert.Equal(t, "pepe", records[0].Name)
	assert.Equal(t, "pepe@acme.io", records[0].Email)
	assert.Empty(t, records[0].Phone)
}

// Clave email con valor vacío no asigna el campo; el bloque no se emite.
func TestScanText_EmailVacioNoAsigna(t *testing.T) {
	text := "Name: Vacio\nEmail:\n\n"
	records := ScanText(text)
	assert.Empty(t, records)
}

// El valor conserva los dos puntos posteriores (solo se corta en el primero).
func TestScanText_ValorConDosPuntos(t *testing.T) {
	text := "Email: a@b.com\nNotes: llamar: lunes 9:00\n"
	records := ScanText(text)
	require.Len(t, records, 1)
	assert.Equal(t, "llamar: lunes 9:00", records[0].Notes)
}

// ──────────────────────────────────────────────────────────────────────────────
// FindEmails + FallbackFromEmails: recolección de emails sueltos
// ──────────────────────────────────────────────────────────────────────────────

// Orden de aparición y duplicados conservados en el escaneo del texto.
func TestFindEmails_OrdenYDuplicados(t *testing.T) {
	text := "b@x.com luego a@y.org y de nuevo b@x.com"
	emails := FindEmails(text)
	assert.Equal(t, []string{"b@x.com", "a@y.org", "b@x.com"}, emails)
}

// Escenario de la frase suelta: un solo registro de fallback con nombre y
// compañía derivados de la dirección.
func TestFallback_FraseConEmailSuelto(t *testing.T) {
	text := "Contact us at info@acme.com for details."
	emails := FindEmails(text)
	require.Len(t, emails, 1)

	records := FallbackFromEmails(emails)
	require.Len(t, records, 1)
	assert.Equal(t, "Info", records[0].Name)
	assert.Equal(t, "info@acme.com", records[0].Email)
	assert.Equal(t, "Acme", records[0].Company)
}

// La parte local con puntos se convierte en palabras con title case.
func TestFallback_NombreCompuesto(t *testing.T) {
	records := FallbackFromEmails([]string{"john.smith@example.com"})
	require.Len(t, records, 1)
	assert.Equal(t, "John Smith", records[0].Name)
	assert.Equal(t, "Example", records[0].Company)
}

// El fallback deduplica direcciones conservando el orden de primera aparición.
func TestFallback_DeduplicaConservandoOrden(t *testing.T) {
	records := FallbackFromEmails([]string{"b@x.com", "a@y.org", "b@x.com"})
	require.Len(t, records, 2)
	assert.Equal(t, "b@x.com", records[0].Email)
	assert.Equal(t, "a@y.org", records[1].Email)
}
