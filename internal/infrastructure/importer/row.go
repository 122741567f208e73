package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/pkg/money"
)

// row is one CSV record. The first conversion failure is kept in err and
// later accessors return zero values.
type row struct {
	reader *csvReader
	num    int
	values []string
	err    error
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func (r *row) fail(field, msg string) {
	if r.err == nil {
		r.err = &RowError{File: r.reader.file, Row: r.num, Field: field, Message: msg}
	}
}

// raw returns the value of a column, or "" when the column is absent
func (r *row) raw(field string) (string, bool) {
	i, ok := r.reader.header[field]
	if !ok || i >= len(r.values) {
		return "", false
	}
	return strings.TrimSpace(r.values[i]), true
}

func (r *row) str(field string) string {
	v, _ := r.raw(field)
	return v
}

// optional returns nil for an absent or empty column
func (r *row) optional(field string) *string {
	v, ok := r.raw(field)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (r *row) integer(field string) int64 {
	v, ok := r.raw(field)
	if !ok || v == "" {
		r.fail(field, "is required")
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		r.fail(field, "must be an integer")
		return 0
	}
	return n
}

// id returns the id column, or 0 to let the database assign one
func (r *row) id() int64 {
	if v, ok := r.raw("id"); !ok || v == "" {
		return 0
	}
	return r.integer("id")
}

// cents reads a price already stored as whole cents
func (r *row) cents(field string) money.Cents {
	return money.Cents(r.integer(field))
}

// timestamp reads a timestamp, defaulting to now when the column is absent or empty
func (r *row) timestamp(field string) time.Time {
	v, ok := r.raw(field)
	if !ok || v == "" {
		return time.Now().UTC()
	}
	t, err := filter.ParseTime(v)
	if err != nil {
		r.fail(field, err.Error())
		return time.Time{}
	}
	return t
}
