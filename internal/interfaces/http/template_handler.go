package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/domain"
)

// TemplateHandler maneja las plantillas de email (protegido).
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear plantilla de email
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTemplateRequest  true  "name, subject y body son requeridos"
// @Success      201   {object}  dto.TemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tpl, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, subject y body son requeridos; template_type debe ser proposal, follow_up o general"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(tpl)
}

// List godoc
// @Summary      Listar plantillas
// @Tags         templates
// @Produce      json
// @Param        type  query  string  false  "proposal | follow_up | general"
// @Success      200   {array}  dto.TemplateResponse
// @Router       /api/templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("type"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de plantilla desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener plantilla por ID
// @Tags         templates
// @Produce      json
// @Param        id  path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [get]
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	tpl, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if tpl == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
	}
	return c.JSON(tpl)
}

// Update godoc
// @Summary      Actualizar plantilla (completa)
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la plantilla"
// @Param        body  body  dto.CreateTemplateRequest  true  "reemplazo completo"
// @Success      200   {object}  dto.TemplateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [put]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tpl, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if tpl == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
	}
	return c.JSON(tpl)
}

// Delete godoc
// @Summary      Eliminar plantilla
// @Tags         templates
// @Param        id  path  string  true  "ID de la plantilla"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
