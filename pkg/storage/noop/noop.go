// Package noop provides a storage.Storage that is always unavailable. It is
// used when the database cannot be opened at startup so that checks keep
// working while persistence degrades to warnings.
package noop

import (
	"context"

	"domainintel/pkg/domain"
	"domainintel/pkg/storage"

	"github.com/riverqueue/river"
)

type Storage struct{}

var _ storage.Storage = Storage{}

func (Storage) Append(context.Context, domain.SearchRecord) (domain.SearchRecord, error) {
	return domain.SearchRecord{}, storage.Unavailable("append")
}

func (Storage) DeleteByDomain(context.Context, ...string) (int64, error) {
	return 0, storage.Unavailable("delete")
}

func (Storage) Query(context.Context, storage.SearchFilter) ([]domain.SearchRecord, error) {
	return nil, storage.Unavailable("query")
}

func (Storage) QueryAvailableGenerated(context.Context, storage.SearchFilter) ([]domain.SearchRecord, error) {
	return nil, storage.Unavailable("query generated")
}

func (Storage) QueryDNSRecords(context.Context, storage.SearchFilter) (map[string]domain.DNSRecordSet, error) {
	return nil, storage.Unavailable("query dns records")
}

func (Storage) AddJob(context.Context, river.JobArgs, *river.InsertOpts) (bool, error) {
	return false, storage.Unavailable("add job")
}

func (Storage) Ping(context.Context) error { return storage.Unavailable("ping") }

func (Storage) Close() error { return nil }

func (Storage) Begin(context.Context) (storage.TxStorage, error) {
	return nil, storage.Unavailable("begin")
}

func (s Storage) WithTx(ctx context.Context, _ func(storage.AllStorage) error) error {
	_, err := s.Begin(ctx)

	return err
}
