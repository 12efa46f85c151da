// Extracción de clientes desde documentos Word (.docx).
// El .docx es un zip; el texto vive en word/document.xml (WordprocessingML).

package office

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/bidtracker-api/internal/application/ports"
	"github.com/jhoicas/bidtracker-api/internal/domain/extract"
)

var _ ports.DocumentExtractor = (*DocxExtractor)(nil)

// DocxExtractor extrae candidatos a cliente del texto plano de un .docx.
type DocxExtractor struct{}

// NewDocxExtractor crea el extractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract decodifica el documento y aplica la extracción en dos fases:
// primero el escaneo estructurado clave: valor; si no produce registros,
// el fallback de un registro por email distinto encontrado en el texto.
func (e *DocxExtractor) Extract(content []byte) ([]extract.RawFieldMap, error) {
	text, err := documentText(content)
	if err != nil {
		return nil, err
	}
	records := extract.ScanText(text)
	if len(records) == 0 {
		records = extract.FallbackFromEmails(extract.FindEmails(text))
	}
	return records, nil
}

// documentText abre el zip, localiza word/document.xml y reconstruye el texto:
// un párrafo (w:p) por línea, concatenando sus runs de texto (w:t). Las líneas
// en blanco del documento sobreviven como párrafos sin texto, que es lo que
// delimita los registros en el escaneo estructurado.
func documentText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("abrir docx: %w", err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("abrir document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("leer document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("docx sin word/document.xml")
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(docXML); err != nil {
		return "", fmt.Errorf("parsear document.xml: %w", err)
	}

	var lines []string
	for _, p := range doc.FindElements("//w:p") {
		var sb strings.Builder
		for _, t := range p.FindElements(".//w:t") {
			sb.WriteString(t.Text())
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n"), nil
}
