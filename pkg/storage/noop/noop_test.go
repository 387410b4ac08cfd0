package noop_test

import (
	"context"
	"testing"

	"domainintel/pkg/domain"
	"domainintel/pkg/serrors"
	"domainintel/pkg/storage"
	"domainintel/pkg/storage/noop"

	"github.com/stretchr/testify/require"
)

func TestStorageIsUnavailable(t *testing.T) {
	ctx := context.Background()
	s := noop.Storage{}

	_, err := s.Append(ctx, domain.SearchRecord{Domain: "a.com"})
	require.ErrorIs(t, err, serrors.ErrUnavailable)

	records, err := s.Query(ctx, storage.SearchFilter{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Empty(t, records)

	n, err := s.DeleteByDomain(ctx, "a.com")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Zero(t, n)

	called := false
	err = s.WithTx(ctx, func(storage.AllStorage) error {
		called = true

		return nil
	})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.False(t, called)

	require.ErrorIs(t, s.Ping(ctx), serrors.ErrUnavailable)
	require.NoError(t, s.Close())
}
