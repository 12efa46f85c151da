package http_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/infrastructure/office"
	apphttp "github.com/jhoicas/bidtracker-api/internal/interfaces/http"
)

// buildImportApp monta el endpoint de importación con los extractores reales
// y el repositorio en memoria.
func buildImportApp(repo *memCustomerRepo) *fiber.App {
	app := fiber.New()
	uc := usecase.NewImportUseCase(repo, office.NewDocxExtractor(), office.NewSheetExtractor())
	app.Post("/api/customers/import", apphttp.NewImportHandler(uc).Import)
	return app
}

// docxUpload arma un .docx en memoria con un párrafo por string.
func docxUpload(t *testing.T, paragraphs ...string) []byte {
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

// doMultipart lanza POST /api/customers/import con el archivo adjunto.
func doMultipart(t *testing.T, app *fiber.App, filename string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/customers/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de importación end-to-end (multipart → extractor → repositorio)
// ──────────────────────────────────────────────────────────────────────────────

func TestImportHandler_DocxEstructurado(t *testing.T) {
	repo := newMemCustomerRepo()
	app := buildImportApp(repo)

	content := docxUpload(t,
		"name: Ana López",
		"email: ana@acme.com",
		"company: Acme",
		"",
		"name: Beto Ruiz",
		"email: beto@globex.org",
	)
	resp := doMultipart(t, app, "clientes.docx", content)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ImportResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out.ImportedCount)
	assert.Contains(t, out.Message, "2")
	require.Len(t, out.Customers, 2)
	assert.Equal(t, "ana@acme.com", out.Customers[0].Email)
	assert.Len(t, repo.order, 2)
}

func TestImportHandler_DocxSoloProsa_Fallback(t *testing.T) {
	app := buildImportApp(newMemCustomerRepo())

	content := docxUpload(t, "Escribir a juan.gomez@initech.io con la propuesta.")
	resp := doMultipart(t, app, "notas.docx", content)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ImportResultResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.ImportedCount)
	assert.Equal(t, "Juan Gomez", out.Customers[0].Name)
	assert.Equal(t, "Initech", out.Customers[0].Company)
}

// Documento sin emails: la sesión falla como lote con 400 NO_CUSTOMER_DATA.
func TestImportHandler_DocxVacio_Retorna400(t *testing.T) {
	app := buildImportApp(newMemCustomerRepo())

	content := docxUpload(t, "Acta de reunión sin contactos.")
	resp := doMultipart(t, app, "acta.docx", content)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "NO_CUSTOMER_DATA", errBody.Code)
	assert.Contains(t, errBody.Message, "no se encontraron datos")
}

// Bytes corruptos bajo extensión soportada: degrada a cero candidatos → 400.
func TestImportHandler_DocxCorrupto_Retorna400(t *testing.T) {
	app := buildImportApp(newMemCustomerRepo())

	resp := doMultipart(t, app, "roto.docx", []byte("esto no es un zip"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "NO_CUSTOMER_DATA", errBody.Code)
}

func TestImportHandler_ExtensionNoSoportada_Retorna400(t *testing.T) {
	app := buildImportApp(newMemCustomerRepo())

	resp := doMultipart(t, app, "clientes.csv", []byte("name,email\nAna,ana@x.com"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "UNSUPPORTED_FORMAT", errBody.Code)
}

func TestImportHandler_SinArchivo_Retorna400(t *testing.T) {
	app := buildImportApp(newMemCustomerRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/customers/import", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Reimportar el mismo archivo: los duplicados se omiten y el lote termina
// sin clientes nuevos.
func TestImportHandler_ReimportarDuplicados(t *testing.T) {
	repo := newMemCustomerRepo()
	app := buildImportApp(repo)

	content := docxUpload(t, "email: unica@x.com")
	resp := doMultipart(t, app, "clientes.docx", content)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := doMultipart(t, app, "clientes.docx", content)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	assert.Len(t, repo.order, 1)
}
