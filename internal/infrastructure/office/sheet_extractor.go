// Extracción de clientes desde hojas de cálculo (.xlsx y .xls legado).

package office

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bidtracker-api/internal/application/ports"
	"github.com/jhoicas/bidtracker-api/internal/domain/extract"
)

var _ ports.SpreadsheetExtractor = (*SheetExtractor)(nil)

// SheetExtractor extrae candidatos a cliente de la primera hoja de un libro.
type SheetExtractor struct{}

// NewSheetExtractor crea el extractor.
func NewSheetExtractor() *SheetExtractor {
	return &SheetExtractor{}
}

// Extract decodifica el libro según la extensión, mapea la fila de encabezados
// a campos canónicos y convierte cada fila de datos en un candidato. Las filas
// sin email se descartan.
func (e *SheetExtractor) Extract(content []byte, filename string) ([]extract.RawFieldMap, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = rowsFromXLSX(content)
	case ".xls":
		rows, err = rowsFromXLS(content)
	default:
		return nil, fmt.Errorf("extensión de hoja no reconocida: %s", filename)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := extract.MapHeaders(rows[0])
	var records []extract.RawFieldMap
	for _, row := range rows[1:] {
		fields := extract.RowToFields(columns, row)
		if fields.HasEmail() {
			records = append(records, fields)
		}
	}
	return records, nil
}

// rowsFromXLSX lee la primera hoja de un libro OOXML con excelize.
func rowsFromXLSX(content []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	return rows, nil
}

// rowsFromXLS lee la primera hoja de un libro binario legado (BIFF).
func rowsFromXLS(content []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(content), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("abrir xls: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("xls sin hojas")
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		var cells []string
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
