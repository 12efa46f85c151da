package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/usecase"
	"github.com/jhoicas/bidtracker-api/internal/domain"
)

// ImportHandler maneja la importación de clientes desde archivos.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar clientes desde .docx, .xlsx o .xls
// @Tags         customers
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "documento o libro con datos de clientes"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo multipart 'file' requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	out, err := h.uc.Import(fileHeader.Filename, content)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: "formato de archivo no soportado (use .docx, .xlsx o .xls)"})
		}
		if errors.Is(err, domain.ErrNoCustomerData) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_CUSTOMER_DATA", Message: "no se encontraron datos de clientes en el archivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
