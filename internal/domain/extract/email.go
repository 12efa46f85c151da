package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Gramática de email: parte local dot-atom, dominio con al menos una etiqueta
// y TLD de 2+ letras.
var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	emailExact   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// IsValidEmail valida la dirección completa contra la gramática.
func IsValidEmail(s string) bool {
	return emailExact.MatchString(s)
}

// FindEmails devuelve todas las direcciones del texto en orden de aparición,
// conservando duplicados.
func FindEmails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// LocalPart devuelve el texto antes de la arroba. Si no hay arroba devuelve
// la cadena completa.
func LocalPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

// DomainFirstLabel devuelve la primera etiqueta del dominio ("acme" para
// info@acme.com). Vacío si la dirección no tiene arroba.
func DomainFirstLabel(email string) string {
	i := strings.IndexByte(email, '@')
	if i < 0 {
		return ""
	}
	domain := email[i+1:]
	if j := strings.IndexByte(domain, '.'); j >= 0 {
		return domain[:j]
	}
	return domain
}

// TitleWords pone cada palabra en title case ("john smith" -> "John Smith").
func TitleWords(s string) string {
	return cases.Title(language.Und).String(s)
}
