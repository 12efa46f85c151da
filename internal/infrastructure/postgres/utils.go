package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation indica si err proviene de un constraint UNIQUE (el email
// de customers y de users). Los repositorios lo traducen a domain.ErrDuplicate
// o domain.ErrEmailAlreadyExists. pgx siempre entrega los errores del servidor
// como *pgconn.PgError, así que basta con inspeccionar el SQLSTATE.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
