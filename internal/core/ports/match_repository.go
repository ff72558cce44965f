package ports

import (
	"context"

	"github.com/geoyouth/league-api/internal/core/domain"
)

// MatchListInput carries the (already clamped) paging window and optional
// status filter for the match listing endpoint.
type MatchListInput struct {
	Status string
	Limit  int
	Offset int
}

// MatchRepository extends the uniform CRUD contract with the paginated,
// filtered listing matches require. ListPage returns the page of matches
// ordered by match date ascending, plus the total row count under the same
// status filter with no paging applied.
type MatchRepository interface {
	ResourceRepository[domain.Match]
	ListPage(ctx context.Context, in MatchListInput) ([]domain.Match, int, error)
}
