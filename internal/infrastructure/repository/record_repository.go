package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"gorm.io/gorm"
)

// recordRepository implements the read operations shared by every entity
type recordRepository[T any] struct {
	db    *gorm.DB
	table string
}

func newRecordRepository[T any](db *gorm.DB, table string) recordRepository[T] {
	return recordRepository[T]{db: db, table: table}
}

func (r *recordRepository[T]) model(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

func (r *recordRepository[T]) byID() string {
	return r.table + ".id ASC"
}

func (r *recordRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var rec T
	err := r.model(ctx).Where(r.table+".id = ?", id).Take(&rec).Error
	return found(&rec, err, r.table)
}

func (r *recordRepository[T]) FindOne(ctx context.Context, conds []filter.Condition) (*T, error) {
	var rec T
	err := r.model(ctx).
		Scopes(MatchConditions(conds)).
		Order(r.byID()).
		Take(&rec).Error
	return found(&rec, err, r.table)
}

func (r *recordRepository[T]) FindAll(ctx context.Context, conds []filter.Condition) ([]T, error) {
	records := make([]T, 0)
	err := r.model(ctx).
		Scopes(MatchConditions(conds)).
		Order(r.byID()).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.table, err)
	}
	return records, nil
}

func (r *recordRepository[T]) Random(ctx context.Context) (*T, error) {
	var rec T
	err := r.model(ctx).Order("RANDOM()").Take(&rec).Error
	return found(&rec, err, r.table)
}

// found maps gorm.ErrRecordNotFound to (nil, nil)
func found[T any](rec *T, err error, table string) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return rec, nil
}
