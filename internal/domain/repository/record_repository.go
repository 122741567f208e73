package repository

import (
	"context"

	"github.com/sangkips/sales-engine-api/internal/domain/filter"
)

// RecordRepository defines the read operations every entity supports.
// Single-row lookups return (nil, nil) when nothing matches.
type RecordRepository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	// FindOne returns the lowest-id row matching every condition
	FindOne(ctx context.Context, conds []filter.Condition) (*T, error)
	// FindAll returns every row matching every condition, ordered by id
	FindAll(ctx context.Context, conds []filter.Condition) ([]T, error)
	// Random returns one row picked uniformly from the whole table
	Random(ctx context.Context) (*T, error)
}
