package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen de conteos del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve los conteos agregados de las cuatro colecciones.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsResponse (customers, campaigns, followups,
// templates, engagement). No requiere parámetros.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(stats)
}
