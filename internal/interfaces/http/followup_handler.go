package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/domain"
)

// FollowUpHandler maneja los recordatorios de seguimiento (protegido).
type FollowUpHandler struct {
	uc *usecase.FollowUpUseCase
}

// NewFollowUpHandler construye el handler.
func NewFollowUpHandler(uc *usecase.FollowUpUseCase) *FollowUpHandler {
	return &FollowUpHandler{uc: uc}
}

// Create godoc
// @Summary      Crear follow-up
// @Tags         followups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFollowUpRequest  true  "customer_id y due_date son requeridos"
// @Success      201   {object}  dto.FollowUpResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/followups [post]
func (h *FollowUpHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFollowUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	followUp, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id y due_date son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "CUSTOMER_NOT_FOUND", Message: "el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(followUp)
}

// List godoc
// @Summary      Listar follow-ups
// @Tags         followups
// @Produce      json
// @Param        status    query  string  false  "pending | sent | completed | cancelled"
// @Param        due_soon  query  bool    false  "solo pending que vencen en los próximos 7 días"
// @Success      200  {array}  dto.FollowUpResponse
// @Router       /api/followups [get]
func (h *FollowUpHandler) List(c *fiber.Ctx) error {
	dueSoon := c.QueryBool("due_soon")
	list, err := h.uc.List(c.Query("status"), dueSoon)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
