package usecase

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/bidtracker-api/internal/application/dto"
	"github.com/jhoicas/bidtracker-api/internal/application/ports"
	"github.com/jhoicas/bidtracker-api/internal/domain"
	"github.com/jhoicas/bidtracker-api/internal/domain/extract"
	"github.com/jhoicas/bidtracker-api/internal/domain/repository"
)

// ImportUseCase sesión de importación de clientes desde un archivo subido.
//
// El discriminador de extractor es la extensión declarada del archivo
// (docx | xlsx | xls); extensiones desconocidas se rechazan antes de parsear.
// Las fallas se manejan en tres niveles:
//   - contenedor corrupto: se registra el diagnóstico y degrada a cero candidatos;
//   - registro inválido o email duplicado: se registra y se omite ese registro;
//   - lote sin registros persistidos: domain.ErrNoCustomerData.
type ImportUseCase struct {
	repo   repository.CustomerRepository
	docs   ports.DocumentExtractor
	sheets ports.SpreadsheetExtractor
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(repo repository.CustomerRepository, docs ports.DocumentExtractor, sheets ports.SpreadsheetExtractor) *ImportUseCase {
	return &ImportUseCase{repo: repo, docs: docs, sheets: sheets}
}

// Import ejecuta la sesión completa: extraer, normalizar y persistir en orden.
func (uc *ImportUseCase) Import(filename string, content []byte) (*dto.ImportResultResponse, error) {
	var (
		raws []extract.RawFieldMap
		err  error
	)
	switch fileType(filename) {
	case "docx":
		raws, err = uc.docs.Extract(content)
	case "xlsx", "xls":
		raws, err = uc.sheets.Extract(content, filename)
	default:
		return nil, domain.ErrUnsupportedFormat
	}
	if err != nil {
		// Contenedor ilegible: falla blanda, el lote sigue con cero candidatos.
		log.Warn().Err(err).Str("filename", filename).Msg("extracción de clientes falló")
		raws = nil
	}
	if len(raws) == 0 {
		return nil, domain.ErrNoCustomerData
	}

	imported := make([]dto.CustomerResponse, 0, len(raws))
	for _, raw := range raws {
		customer, err := extract.Normalize(raw)
		if err != nil {
			log.Warn().Err(err).Str("email", raw.Email).Msg("registro omitido: normalización falló")
			continue
		}
		if err := uc.repo.Create(customer); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Warn().Str("email", customer.Email).Msg("registro omitido: email duplicado")
				continue
			}
			return nil, err
		}
		imported = append(imported, *toCustomerResponse(customer))
	}
	if len(imported) == 0 {
		return nil, domain.ErrNoCustomerData
	}
	return &dto.ImportResultResponse{
		Message:       fmt.Sprintf("Se importaron %d clientes", len(imported)),
		ImportedCount: len(imported),
		Customers:     imported,
	}, nil
}

// fileType extrae el discriminador de tipo desde la extensión, en minúsculas
// y sin punto ("" si el nombre no tiene extensión).
func fileType(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
