package office

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildXLSX arma un libro en memoria con las filas dadas en la primera hoja.
func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestXLSX_EncabezadosConAlias(t *testing.T) {
	content := buildXLSX(t, [][]any{
		{"Full Name", "E-mail", "Business", "Mobile"},
		{"Ana López", "ana@acme.com", "Acme", "555-1234"},
		{"Beto Ruiz", "beto@globex.org", "Globex", ""},
	})

	records, err := NewSheetExtractor().Extract(content, "clientes.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Ana López", records[0].Name)
	assert.Equal(t, "ana@acme.com", records[0].Email)
	assert.Equal(t, "Acme", records[0].Company)
	assert.Equal(t, "555-1234", records[0].Phone)
	assert.Equal(t, "beto@globex.org", records[1].Email)
}

// Las filas sin email se descartan; las celdas se recortan.
func TestXLSX_FilasSinEmailSeDescartan(t *testing.T) {
	content := buildXLSX(t, [][]any{
		{"Name", "Email"},
		{"Sin Correo", ""},
		{"  Con Correo  ", "  ok@x.com  "},
	})

	records, err := NewSheetExtractor().Extract(content, "clientes.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Con Correo", records[0].Name)
	assert.Equal(t, "ok@x.com", records[0].Email)
}

// Libro con solo encabezados: cero candidatos, sin error.
func TestXLSX_SoloEncabezados(t *testing.T) {
	content := buildXLSX(t, [][]any{{"Name", "Email"}})

	records, err := NewSheetExtractor().Extract(content, "clientes.xlsx")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSheet_BytesCorruptos(t *testing.T) {
	_, err := NewSheetExtractor().Extract([]byte("no es un libro"), "clientes.xlsx")
	assert.Error(t, err)

	_, err = NewSheetExtractor().Extract([]byte("tampoco"), "clientes.xls")
	assert.Error(t, err)
}

func TestSheet_ExtensionDesconocida(t *testing.T) {
	_, err := NewSheetExtractor().Extract([]byte("x"), "clientes.csv")
	assert.Error(t, err)
}
