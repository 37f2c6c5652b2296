package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/neryad/piki-backend/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// mapWriteError traduce violaciones de constraints a errores de dominio.
func mapWriteError(err error, op string, duplicate error) error {
	switch {
	case isUniqueViolation(err):
		return duplicate
	case isForeignKeyViolation(err):
		return domain.ErrForeignKey
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
