package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/domain"
)

// CampaignHandler maneja las campañas de email (protegido).
type CampaignHandler struct {
	uc *usecase.CampaignUseCase
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc *usecase.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campaña
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampaignRequest  true  "name, template_id y customer_ids son requeridos"
// @Success      201   {object}  dto.CampaignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampaignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	campaign, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, template_id y customer_ids son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TEMPLATE_NOT_FOUND", Message: "la plantilla no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// List godoc
// @Summary      Listar campañas
// @Tags         campaigns
// @Produce      json
// @Param        limit   query  int  false  "default 20, max 100"
// @Param        offset  query  int  false  "default 0"
// @Success      200  {array}  dto.CampaignResponse
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener campaña por ID
// @Tags         campaigns
// @Produce      json
// @Param        id  path  string  true  "ID de la campaña"
// @Success      200  {object}  dto.CampaignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) GetByID(c *fiber.Ctx) error {
	campaign, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if campaign == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campaña no encontrada"})
	}
	return c.JSON(campaign)
}
