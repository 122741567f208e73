package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/sales-engine-api/internal/domain/filter"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/dto/request"
	"github.com/sangkips/sales-engine-api/internal/presentation/http/dto/response"
	"github.com/sangkips/sales-engine-api/pkg/apperror"
)

// pathID parses the :id path parameter. On failure it writes a 400 and returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, apperror.NewInvalidParamError("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

// rankingQuantity binds the optional quantity parameter. On failure it writes a 400 and returns false.
func rankingQuantity(c *gin.Context) (*int, bool) {
	var req request.RankingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.NewInvalidParamError("quantity", "must be a positive integer"))
		return nil, false
	}
	return req.Quantity, true
}

// revenueDate binds the date parameter as a UTC day. An absent date yields
// nil unless required. On failure it writes a 400 and returns false.
func revenueDate(c *gin.Context, required bool) (*time.Time, bool) {
	var req request.RevenueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperror.NewInvalidParamError("date", err.Error()))
		return nil, false
	}
	if req.Date == "" {
		if required {
			response.Error(c, apperror.NewInvalidParamError("date", "is required"))
			return nil, false
		}
		return nil, true
	}
	day, err := filter.ParseDate(req.Date)
	if err != nil {
		response.Error(c, apperror.NewInvalidParamError("date", err.Error()))
		return nil, false
	}
	return &day, true
}

// renderOne writes a single record, rendering a missing one as null
func renderOne[T any](c *gin.Context, rec *T, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rec)
}

// renderMany writes a list of records
func renderMany[T any](c *gin.Context, recs []T, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if recs == nil {
		recs = []T{}
	}
	response.OK(c, recs)
}
