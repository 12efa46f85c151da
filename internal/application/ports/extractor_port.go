package ports

import "github.com/jhoicas/bidtracker-api/internal/domain/extract"

// DocumentExtractor extrae candidatos de cliente desde los bytes de un
// documento de texto (.docx). Un contenedor corrupto devuelve (nil, error):
// el caso de uso registra el diagnóstico y degrada a "cero candidatos" en vez
// de propagar la falla (tolerancia a fallas blandas de la importación).
type DocumentExtractor interface {
	Extract(content []byte) ([]extract.RawFieldMap, error)
}

// SpreadsheetExtractor extrae candidatos desde una hoja de cálculo. El nombre
// de archivo solo selecciona el motor de decodificación (.xls legado vs .xlsx);
// no tiene efecto semántico.
type SpreadsheetExtractor interface {
	Extract(content []byte, filename string) ([]extract.RawFieldMap, error)
}
