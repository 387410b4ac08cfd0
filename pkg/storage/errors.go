package storage

import (
	"errors"

	"domainintel/pkg/serrors"
)

var (
	// ErrAlreadyInTx is returned when Begin is called on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

// Unavailable builds the error returned by backends that cannot serve requests.
// It matches serrors.ErrUnavailable.
func Unavailable(op string) error {
	return serrors.With(serrors.ErrUnavailable, "record store unavailable: %s", op)
}
