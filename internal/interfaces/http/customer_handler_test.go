package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
	apphttp "github.com/jhoicas/bidtracker-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio fake en memoria (compartido por los tests de handlers)
// ──────────────────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	byID    map[string]*entity.Customer
	byEmail map[string]string
	order   []string
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{byID: map[string]*entity.Customer{}, byEmail: map[string]string{}}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	if _, dup := r.byEmail[c.Email]; dup {
		return domain.ErrDuplicate
	}
	cp := *c
	r.byID[c.ID] = &cp
	r.byEmail[c.Email] = c.ID
	r.order = append(r.order, c.ID)
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) List(status string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, id := range r.order {
		c := r.byID[id]
		if status != "" && c.Status != status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	old, ok := r.byID[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if old.Email != c.Email {
		if _, dup := r.byEmail[c.Email]; dup {
			return domain.ErrDuplicate
		}
		delete(r.byEmail, old.Email)
		r.byEmail[c.Email] = c.ID
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.byEmail, c.Email)
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// buildCustomerApp monta el handler de clientes sobre una app Fiber sin auth
// (el middleware se prueba por separado).
func buildCustomerApp(repo *memCustomerRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCustomerHandler(usecase.NewCustomerUseCase(repo))
	app.Post("/api/customers", h.Create)
	app.Get("/api/customers", h.List)
	app.Get("/api/customers/:id", h.GetByID)
	app.Put("/api/customers/:id", h.Update)
	app.Delete("/api/customers/:id", h.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD de clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerHandler_CrearYObtener(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/customers",
		`{"name":"Ana López","email":"ana@acme.com","company":"Acme","tags":["vip"]}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, []string{"vip"}, created.Tags)

	resp2 := doJSON(t, app, http.MethodGet, "/api/customers/"+created.ID, "")
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

func TestCustomerHandler_CrearSinEmail_Retorna400(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/customers", `{"name":"Sin Correo"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCustomerHandler_EmailDuplicado_Retorna409(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/customers", `{"name":"Uno","email":"dup@x.com"}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := doJSON(t, app, http.MethodPost, "/api/customers", `{"name":"Dos","email":"dup@x.com"}`)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
}

func TestCustomerHandler_ObtenerInexistente_Retorna404(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodGet, "/api/customers/no-existe", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCustomerHandler_ActualizacionParcial(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/customers",
		`{"name":"Ana","email":"ana@x.com","company":"Acme"}`)
	var created dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp2 := doJSON(t, app, http.MethodPut, "/api/customers/"+created.ID, `{"status":"inactive"}`)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var updated dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&updated))
	assert.Equal(t, "inactive", updated.Status)
	// Los campos no enviados se conservan
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "Acme", updated.Company)
}

func TestCustomerHandler_ActualizarStatusInvalido_Retorna400(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/customers", `{"name":"Ana","email":"ana@x.com"}`)
	var created dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp2 := doJSON(t, app, http.MethodPut, "/api/customers/"+created.ID, `{"status":"zombie"}`)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestCustomerHandler_EliminarDosVeces(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	resp := doJSON(t, app, http.MethodPost, "/api/customers", `{"name":"Ana","email":"ana@x.com"}`)
	var created dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp2 := doJSON(t, app, http.MethodDelete, "/api/customers/"+created.ID, "")
	resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)

	resp3 := doJSON(t, app, http.MethodDelete, "/api/customers/"+created.ID, "")
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestCustomerHandler_ListadoFiltradoPorStatus(t *testing.T) {
	app := buildCustomerApp(newMemCustomerRepo())

	for _, body := range []string{
		`{"name":"Ana","email":"ana@x.com"}`,
		`{"name":"Beto","email":"beto@x.com"}`,
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/customers", body)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/customers?status=active&limit=10", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list dto.CustomerListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 10, list.Page.Limit)
}
