package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/geoyouth/league-api/internal/core/domain"
	"github.com/geoyouth/league-api/internal/core/ports"
)

// MatchRepository adds the paginated, status-filtered listing on top of the
// generic CRUD operations.
type MatchRepository struct {
	*Repository[domain.Match]
}

func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{Repository: NewRepository(db, matchMapper())}
}

var _ ports.MatchRepository = (*MatchRepository)(nil)

// ListPage returns one page of matches ordered by match date ascending and
// the total number of matches under the same status filter. The filter is
// applied identically to both queries; paging only to the first.
func (r *MatchRepository) ListPage(ctx context.Context, in ports.MatchListInput) ([]domain.Match, int, error) {
	query := fmt.Sprintf("SELECT %s FROM matches", r.selectCols)
	countQuery := "SELECT COUNT(*) FROM matches"
	args := []any{}

	if in.Status != "" {
		query += " WHERE status = $1"
		countQuery += " WHERE status = $1"
		args = append(args, in.Status)
	}

	query += fmt.Sprintf(" ORDER BY match_date LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, in.Limit, in.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]domain.Match, 0, in.Limit)
	for rows.Next() {
		m, err := r.m.Scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	return matches, total, nil
}
