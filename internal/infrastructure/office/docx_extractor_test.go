package office

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx arma un .docx mínimo en memoria: un zip con word/document.xml
// donde cada string es un párrafo (w:p) con un run de texto (w:t).
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		if p == "" {
			body.WriteString(`<w:p/>`)
			continue
		}
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	docXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(docXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// ──────────────────────────────────────────────────────────────────────────────
// Extracción estructurada
// ──────────────────────────────────────────────────────────────────────────────

func TestDocx_BloquesEstructurados(t *testing.T) {
	content := buildDocx(t,
		"name: Ana López",
		"email: ana@acme.com",
		"company: Acme",
		"",
		"name: Beto Ruiz",
		"email: beto@globex.org",
	)

	records, err := NewDocxExtractor().Extract(content)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana López", records[0].Name)
	assert.Equal(t, "ana@acme.com", records[0].Email)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "beto@globex.org", records[1].Email)
}

// Un párrafo vacío en el documento delimita registros, igual que una línea
// en blanco en texto plano.
func TestDocx_ParrafoVacioDelimita(t *testing.T) {
	content := buildDocx(t,
		"email: uno@x.com",
		"",
		"email: dos@x.com",
	)

	records, err := NewDocxExtractor().Extract(content)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

// Texto en runs partidos (w:t múltiples) se concatena dentro del párrafo.
func TestDocx_RunsPartidos(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:t>email: par</w:t></w:r><w:r><w:t>tido@x.com</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(docXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	records, err := NewDocxExtractor().Extract(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "partido@x.com", records[0].Email)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallback por emails sueltos
// ──────────────────────────────────────────────────────────────────────────────

func TestDocx_FallbackEmailsEnProsa(t *testing.T) {
	content := buildDocx(t,
		"Reunión del martes con el equipo comercial.",
		"Quedamos en escribir a maria.perez@acme.com y a soporte@globex.org.",
	)

	records, err := NewDocxExtractor().Extract(content)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Maria Perez", records[0].Name)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "soporte@globex.org", records[1].Email)
}

func TestDocx_SinEmailsNiBloques(t *testing.T) {
	content := buildDocx(t, "Acta de reunión.", "Sin contactos que registrar.")

	records, err := NewDocxExtractor().Extract(content)
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contenedores inválidos
// ──────────────────────────────────────────────────────────────────────────────

func TestDocx_BytesCorruptos(t *testing.T) {
	_, err := NewDocxExtractor().Extract([]byte("esto no es un zip"))
	assert.Error(t, err)
}

func TestDocx_ZipSinDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("otro/archivo.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("hola"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = NewDocxExtractor().Extract(buf.Bytes())
	assert.Error(t, err)
}
