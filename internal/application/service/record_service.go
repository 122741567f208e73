package service

import (
	"context"
	"net/url"

	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/domain/repository"
	"github.com/sangkips/sales-engine-api/pkg/apperror"
)

// RecordService implements find, find_all, random, index and show for one entity
type RecordService[T any] struct {
	repo     repository.RecordRepository[T]
	filters  filter.Set
	resource string
}

// NewRecordService creates a record service for the entity behind repo
func NewRecordService[T any](repo repository.RecordRepository[T], filters filter.Set, resource string) *RecordService[T] {
	return &RecordService[T]{repo: repo, filters: filters, resource: resource}
}

// Find returns the first record matching params, or nil when none match
func (s *RecordService[T]) Find(ctx context.Context, params url.Values) (*T, error) {
	conds, err := s.filters.Parse(params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, conds)
}

// FindAll returns every record matching params
func (s *RecordService[T]) FindAll(ctx context.Context, params url.Values) ([]T, error) {
	conds, err := s.filters.Parse(params)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx, conds)
}

// Random returns a random record, or nil when the table is empty
func (s *RecordService[T]) Random(ctx context.Context) (*T, error) {
	return s.repo.Random(ctx)
}

// List returns every record
func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.FindAll(ctx, nil)
}

// Get returns a record by primary key or a 404 AppError
func (s *RecordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NewNotFoundError(s.resource)
	}
	return rec, nil
}

// listBy returns the records whose column equals id
func (s *RecordService[T]) listBy(ctx context.Context, column string, id int64) ([]T, error) {
	return s.repo.FindAll(ctx, []filter.Condition{{Column: s.filters.Table + "." + column, Value: id}})
}
