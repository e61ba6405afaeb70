package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// isUniqueViolation detecta violação de constraint de unicidade do
// Postgres. O índice parcial de agenda e os índices de nome dependem
// disso para transformar a corrida perdida em erro de conflito.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
