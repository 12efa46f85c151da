// Package pdf implementa el reporte imprimible del listado de clientes.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte │ Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Email | Empresa | Estado | Último contacto │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: Total de clientes incluidos                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bidtracker-api/internal/application/ports"
	"github.com/jhoicas/bidtracker-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.CustomerReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.CustomerReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateCustomerReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCustomerReport(
	_ context.Context,
	customers []*entity.Customer,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Clientes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, c := range customers {
		m.AddRows(customerRow(c))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(customers)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE CLIENTES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezados de la tabla.
func tableHeaderRow() core.Row {
	header := func(label string, width int) core.Col {
		return col.New(width).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		)
	}
	return row.New(7).Add(
		header("Nombre", 3),
		header("Email", 3),
		header("Empresa", 2),
		header("Estado", 2),
		header("Último contacto", 2),
	)
}

// customerRow: una fila de datos por cliente.
func customerRow(c *entity.Customer) core.Row {
	lastContact := "—"
	if c.LastContact != nil {
		lastContact = c.LastContact.Format("02/01/2006")
	}
	cell := func(value string, width int) core.Col {
		return col.New(width).Add(text.New(value, props.Text{Size: 8}))
	}
	return row.New(6).Add(
		cell(c.Name, 3),
		cell(c.Email, 3),
		cell(c.Company, 2),
		cell(c.Status, 2),
		cell(lastContact, 2),
	)
}

// footerRow: total de clientes incluidos en el reporte.
func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de clientes: %d", total), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
	)
}
