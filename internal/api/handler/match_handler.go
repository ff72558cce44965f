package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/geoyouth/league-api/internal/api/metrics"
	"github.com/geoyouth/league-api/internal/core/domain"
	"github.com/geoyouth/league-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// MatchHandler extends the generic resource handler with the paginated,
// status-filtered listing. Get/Create/Update/Delete come from the embedded
// handler unchanged.
type MatchHandler struct {
	*ResourceHandler[domain.Match, matchRequest]
	matches ports.MatchRepository
}

func NewMatchHandler(matches ports.MatchRepository) *MatchHandler {
	return &MatchHandler{
		ResourceHandler: NewResourceHandler[domain.Match, matchRequest](matches, "Match", (*matchRequest).toDomain, nil),
		matches:         matches,
	}
}

type paginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type matchListResponse struct {
	Matches    []domain.Match     `json:"matches"`
	Pagination paginationResponse `json:"pagination"`
}

// List handles GET /api/matches with optional status filter and paging.
//
// Non-positive page and limit values clamp to their defaults rather than
// reaching storage as a negative offset.
//
// @Summary      List matches
// @Tags         matches
// @Produce      json
// @Param        status  query     string  false  "Filter by match status"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Success      200     {object}  matchListResponse
// @Failure      500     {object}  map[string]string
// @Router       /api/matches [get]
func (h *MatchHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	page := queryInt(c, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := queryInt(c, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}

	start := time.Now()
	matches, total, err := h.matches.ListPage(c.Request().Context(), ports.MatchListInput{
		Status: status,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return err
	}
	metrics.MatchListDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, matchListResponse{
		Matches: matches,
		Pagination: paginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
