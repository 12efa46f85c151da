package dto

// ImportResultResponse resultado agregado de una sesión de importación.
// Customers conserva el orden en que los registros fueron normalizados.
type ImportResultResponse struct {
	Message       string             `json:"message"`
	ImportedCount int                `json:"imported_count"`
	Customers     []CustomerResponse `json:"customers"`
}
