// Package extract implementa el núcleo puro de la importación de clientes:
// el escaneo línea a línea de documentos, el mapeo difuso de encabezados de
// hojas de cálculo y la normalización de los campos crudos a entity.Customer.
// No hace I/O: opera sobre texto y filas ya decodificadas por infraestructura.
package extract

// Campos canónicos reconocidos por ambos extractores.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldCompany = "company"
	FieldPhone   = "phone"
	FieldAddress = "address"
	FieldNotes   = "notes"
)

// RawFieldMap campos de texto extraídos para un cliente candidato, previos a
// validación. Forma fija: cadena vacía significa "campo ausente". Transitorio,
// vive solo dentro de una sesión de importación.
type RawFieldMap struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Address string
	Notes   string
}

// Set asigna value al campo canónico indicado. Campos no reconocidos se ignoran.
func (m *RawFieldMap) Set(field, value string) {
	switch field {
	case FieldName:
		m.Name = value
	case FieldEmail:
		m.Email = value
	case FieldCompany:
		m.Company = value
	case FieldPhone:
		m.Phone = value
	case FieldAddress:
		m.Address = value
	case FieldNotes:
		m.Notes = value
	}
}

// HasEmail indica si el mapa tiene un email utilizable.
func (m RawFieldMap) HasEmail() bool { return m.Email != "" }
