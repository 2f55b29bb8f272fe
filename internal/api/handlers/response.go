package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/andresuchdata/salesops-analytics/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

func respond(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondPaged(c *gin.Context, data any, pagination domain.Pagination) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": pagination})
}

// fail maps service errors onto HTTP statuses.
func fail(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownReport):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrStorageDisabled):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	}
	c.JSON(status, gin.H{"success": false, "error": message, "details": err.Error()})
}

// serve runs a filter-driven query and writes the envelope.
func serve[T any](c *gin.Context, what string, fn func(context.Context, domain.Filter) (T, error)) {
	data, err := fn(c.Request.Context(), parseFilter(c))
	if err != nil {
		fail(c, "failed to fetch "+what, err)
		return
	}
	respond(c, data)
}

// servePaged runs a list query and returns one page of it.
func servePaged[T any](c *gin.Context, what string, fn func(context.Context, domain.Filter) ([]T, error)) {
	filter := parseFilter(c)
	items, err := fn(c.Request.Context(), filter)
	if err != nil {
		fail(c, "failed to fetch "+what, err)
		return
	}
	page, pagination := paginate(items, filter.Page, filter.PageSize)
	respondPaged(c, page, pagination)
}

func paginate[T any](items []T, page, pageSize int) ([]T, domain.Pagination) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(items)
	p := domain.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: (total + pageSize - 1) / pageSize,
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []T{}, p
	}
	end := min(start+pageSize, total)
	return items[start:end], p
}
