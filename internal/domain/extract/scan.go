package extract

import "strings"

// ScanText recorre el texto línea a línea armando bloques clave:valor.
//
//   - Una línea en blanco cierra el bloque actual: se emite solo si ya tiene
//     email, y el bloque se reinicia siempre.
//   - Una línea con dos puntos se interpreta como "clave: valor"; la clave se
//     normaliza a minúsculas. name/company/phone/address/notes se asignan
//     siempre (sobrescribiendo); email solo si el valor no está vacío.
//   - Líneas sin dos puntos o con claves desconocidas se ignoran.
//
// El bloque final se emite aunque el texto no termine en línea en blanco.
func ScanText(text string) []RawFieldMap {
	var out []RawFieldMap
	var cur RawFieldMap
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if cur.HasEmail() {
				out = append(out, cur)
			}
			cur = RawFieldMap{}
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case FieldName, FieldCompany, FieldPhone, FieldAddress, FieldNotes:
			cur.Set(key, value)
		case FieldEmail:
			if value != "" {
				cur.Email = value
			}
		}
	}
	if cur.HasEmail() {
		out = append(out, cur)
	}
	return out
}

// FallbackFromEmails sintetiza un RawFieldMap por cada dirección distinta,
// en orden de primera aparición: nombre desde la parte local (puntos a
// espacios, title case) y compañía desde la primera etiqueta del dominio.
// Es la estrategia de recolección cuando el pase estructurado no encontró
// ningún bloque etiquetado.
func FallbackFromEmails(emails []string) []RawFieldMap {
	seen := make(map[string]struct{}, len(emails))
	var out []RawFieldMap
	for _, email := range emails {
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, RawFieldMap{
			Name:    TitleWords(strings.ReplaceAll(LocalPart(email), ".", " ")),
			Email:   email,
			Company: TitleWords(DomainFirstLabel(email)),
		})
	}
	return out
}
