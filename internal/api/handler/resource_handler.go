package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/geoyouth/league-api/internal/api/metrics"
	"github.com/geoyouth/league-api/internal/core/domain"
	"github.com/geoyouth/league-api/internal/core/ports"
)

// ResourceHandler serves the uniform CRUD surface of one league resource:
// public list/get, admin-gated create/update/delete. T is the domain entity,
// R its request schema.
type ResourceHandler[T any, R any] struct {
	repo     ports.ResourceRepository[T]
	name     string      // "Club", "Match", ... for response messages
	label    string      // lowercase name for metrics
	decode   func(*R) *T // request schema -> entity
	onCreate func(e *T)  // optional create-time defaulting, may be nil
}

func NewResourceHandler[T any, R any](
	repo ports.ResourceRepository[T],
	name string,
	decode func(*R) *T,
	onCreate func(e *T),
) *ResourceHandler[T, R] {
	return &ResourceHandler[T, R]{
		repo:     repo,
		name:     name,
		label:    strings.ToLower(name),
		decode:   decode,
		onCreate: onCreate,
	}
}

// List handles GET /. Public, unfiltered, storage-native order.
func (h *ResourceHandler[T, R]) List(c echo.Context) error {
	records, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Get handles GET /:id.
func (h *ResourceHandler[T, R]) Get(c echo.Context) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}

	record, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		return h.mapNotFound(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Create handles POST /. The request schema is validated before any storage
// access; a missing required field never produces a partial write.
func (h *ResourceHandler[T, R]) Create(c echo.Context) error {
	var req R
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e := h.decode(&req)
	if h.onCreate != nil {
		h.onCreate(e)
	}

	created, err := h.repo.Create(c.Request().Context(), e)
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues(h.label, "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /:id. The body is bound but not validated for required
// fields: full-replace entities null out omitted columns, Coach coalesces
// them. Which of the two happens is the repository's per-entity policy.
func (h *ResourceHandler[T, R]) Update(c echo.Context) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}

	var req R
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.repo.Update(c.Request().Context(), id, h.decode(&req))
	if err != nil {
		return h.mapNotFound(err)
	}

	metrics.ResourceWritesTotal.WithLabelValues(h.label, "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /:id. The confirmation payload is distinct from the
// deleted record; repeating the delete yields a clean 404.
func (h *ResourceHandler[T, R]) Delete(c echo.Context) error {
	id, err := h.pathID(c)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		return h.mapNotFound(err)
	}

	metrics.ResourceWritesTotal.WithLabelValues(h.label, "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": h.name + " deleted"})
}

func (h *ResourceHandler[T, R]) pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *ResourceHandler[T, R]) mapNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, h.name+" not found")
	}
	return err
}
