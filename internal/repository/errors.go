package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate se devuelve cuando un insert viola una restriccion de
// unicidad. Es la fuente de verdad real para emails e items duplicados.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolationCode = "23505"

func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}
