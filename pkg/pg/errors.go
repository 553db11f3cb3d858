package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmptyConnectionString = errors.New("pg: empty connection string, set PG_CONN_URL")
	ErrInvalidConfig         = errors.New("pg: invalid connection config")
	ErrConnect               = errors.New("pg: failed to connect")
	ErrHealthcheckFailed     = errors.New("pg: healthcheck failed")
	ErrMigrate               = errors.New("pg: failed to apply migrations")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports a unique violation (SQLSTATE 23505).
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
