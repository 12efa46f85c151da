package extract

import "strings"

// Alias de encabezado reconocidos por campo canónico. Dentro de cada campo
// gana el primer encabezado que coincida (en orden de columnas); un encabezado
// que no coincide con ningún alias queda sin mapear y se ignora.
var columnAliases = []struct {
	field   string
	aliases []string
}{
	{FieldName, []string{"name", "full name", "customer name", "client name"}},
	{FieldEmail, []string{"email", "email address", "e-mail"}},
	{FieldCompany, []string{"company", "organization", "business"}},
	{FieldPhone, []string{"phone", "telephone", "contact", "mobile"}},
	{FieldAddress, []string{"address", "location"}},
}

// MapHeaders construye el mapeo campo canónico -> índice de columna a partir
// de la fila de encabezados (comparación en minúsculas y sin espacios
// exteriores). A lo sumo una columna por campo.
func MapHeaders(headers []string) map[string]int {
	bound := make(map[string]int, len(columnAliases))
	for _, ca := range columnAliases {
		for i, h := range headers {
			if matchesAlias(ca.aliases, h) {
				bound[ca.field] = i
				break
			}
		}
	}
	return bound
}

// RowToFields arma un RawFieldMap con las celdas mapeadas de la fila,
// recortadas. Celdas vacías o fuera de rango no asignan el campo.
func RowToFields(bound map[string]int, row []string) RawFieldMap {
	var m RawFieldMap
	for field, idx := range bound {
		if idx >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[idx])
		if value == "" {
			continue
		}
		m.Set(field, value)
	}
	return m
}

func matchesAlias(aliases []string, header string) bool {
	norm := strings.ToLower(strings.TrimSpace(header))
	for _, a := range aliases {
		if norm == a {
			return true
		}
	}
	return false
}
