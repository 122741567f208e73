package handler

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"
)

// recordReader is the part of a record service the shared handlers need
type recordReader[T any] interface {
	Find(ctx context.Context, params url.Values) (*T, error)
	FindAll(ctx context.Context, params url.Values) ([]T, error)
	Random(ctx context.Context) (*T, error)
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
}

// RecordHandler serves index, show, find, find_all and random for one entity
type RecordHandler[T any] struct {
	records recordReader[T]
}

// NewRecordHandler creates a record handler backed by svc
func NewRecordHandler[T any](svc recordReader[T]) RecordHandler[T] {
	return RecordHandler[T]{records: svc}
}

// Index handles listing every record
func (h *RecordHandler[T]) Index(c *gin.Context) {
	recs, err := h.records.List(c.Request.Context())
	renderMany(c, recs, err)
}

// Show handles getting a record by id; a missing record is a 404
func (h *RecordHandler[T]) Show(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.records.Get(c.Request.Context(), id)
	renderOne(c, rec, err)
}

// Find handles returning the first record matching the query string; no match renders null
func (h *RecordHandler[T]) Find(c *gin.Context) {
	rec, err := h.records.Find(c.Request.Context(), c.Request.URL.Query())
	renderOne(c, rec, err)
}

// FindAll handles returning every record matching the query string
func (h *RecordHandler[T]) FindAll(c *gin.Context) {
	recs, err := h.records.FindAll(c.Request.Context(), c.Request.URL.Query())
	renderMany(c, recs, err)
}

// Random handles returning a random record
func (h *RecordHandler[T]) Random(c *gin.Context) {
	rec, err := h.records.Random(c.Request.Context())
	renderOne(c, rec, err)
}
