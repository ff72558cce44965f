package postgres

import (
	"database/sql"

	"github.com/geoyouth/league-api/internal/core/domain"
)

// One repository constructor per league resource. Column order here fixes
// the insert/update parameter order; the scan functions read the id column
// first, then the mutable columns in the same order.

func NewClubRepository(db *sql.DB) *Repository[domain.Club] {
	return NewRepository(db, Mapper[domain.Club]{
		Table:    "clubs",
		IDColumn: "club_id",
		Columns:  []string{"name", "logo_url", "city"},
		Scan: func(row RowScanner) (*domain.Club, error) {
			var c domain.Club
			if err := row.Scan(&c.ClubID, &c.Name, &c.LogoURL, &c.City); err != nil {
				return nil, err
			}
			return &c, nil
		},
		Values: func(c *domain.Club) []any {
			return []any{c.Name, c.LogoURL, c.City}
		},
	})
}

func NewTeamRepository(db *sql.DB) *Repository[domain.Team] {
	return NewRepository(db, Mapper[domain.Team]{
		Table:    "teams",
		IDColumn: "team_id",
		Columns:  []string{"club_id", "name", "age_category"},
		Scan: func(row RowScanner) (*domain.Team, error) {
			var t domain.Team
			if err := row.Scan(&t.TeamID, &t.ClubID, &t.Name, &t.AgeCategory); err != nil {
				return nil, err
			}
			return &t, nil
		},
		Values: func(t *domain.Team) []any {
			return []any{t.ClubID, t.Name, t.AgeCategory}
		},
	})
}

func NewPlayerRepository(db *sql.DB) *Repository[domain.Player] {
	return NewRepository(db, Mapper[domain.Player]{
		Table:    "players",
		IDColumn: "player_id",
		Columns:  []string{"first_name", "last_name", "birth_date", "position", "team_id"},
		Scan: func(row RowScanner) (*domain.Player, error) {
			var p domain.Player
			if err := row.Scan(&p.PlayerID, &p.FirstName, &p.LastName, &p.BirthDate, &p.Position, &p.TeamID); err != nil {
				return nil, err
			}
			return &p, nil
		},
		Values: func(p *domain.Player) []any {
			return []any{p.FirstName, p.LastName, p.BirthDate, p.Position, p.TeamID}
		},
	})
}

// Coach is the one resource with coalescing updates: omitted fields keep
// their stored values.
func NewCoachRepository(db *sql.DB) *Repository[domain.Coach] {
	return NewRepository(db, Mapper[domain.Coach]{
		Table:    "coaches",
		IDColumn: "coach_id",
		Columns:  []string{"first_name", "last_name", "birth_date", "team_id"},
		Coalesce: true,
		Scan: func(row RowScanner) (*domain.Coach, error) {
			var c domain.Coach
			if err := row.Scan(&c.CoachID, &c.FirstName, &c.LastName, &c.BirthDate, &c.TeamID); err != nil {
				return nil, err
			}
			return &c, nil
		},
		Values: func(c *domain.Coach) []any {
			return []any{c.FirstName, c.LastName, c.BirthDate, c.TeamID}
		},
	})
}

func matchMapper() Mapper[domain.Match] {
	return Mapper[domain.Match]{
		Table:    "matches",
		IDColumn: "match_id",
		Columns:  []string{"team1_id", "team2_id", "tournament_id", "match_date", "score_team1", "score_team2", "status", "venue"},
		Scan: func(row RowScanner) (*domain.Match, error) {
			var m domain.Match
			if err := row.Scan(
				&m.MatchID, &m.Team1ID, &m.Team2ID, &m.TournamentID, &m.MatchDate,
				&m.ScoreTeam1, &m.ScoreTeam2, &m.Status, &m.Venue,
			); err != nil {
				return nil, err
			}
			return &m, nil
		},
		Values: func(m *domain.Match) []any {
			return []any{m.Team1ID, m.Team2ID, m.TournamentID, m.MatchDate, m.ScoreTeam1, m.ScoreTeam2, m.Status, m.Venue}
		},
	}
}

func NewTournamentRepository(db *sql.DB) *Repository[domain.Tournament] {
	return NewRepository(db, Mapper[domain.Tournament]{
		Table:    "tournaments",
		IDColumn: "tournament_id",
		Columns:  []string{"name", "start_date", "end_date", "location"},
		Scan: func(row RowScanner) (*domain.Tournament, error) {
			var t domain.Tournament
			if err := row.Scan(&t.TournamentID, &t.Name, &t.StartDate, &t.EndDate, &t.Location); err != nil {
				return nil, err
			}
			return &t, nil
		},
		Values: func(t *domain.Tournament) []any {
			return []any{t.Name, t.StartDate, t.EndDate, t.Location}
		},
	})
}

// News sets publish_date on insert only; updates rewrite title, content and
// author and leave the stored publish date alone.
func NewNewsRepository(db *sql.DB) *Repository[domain.News] {
	return NewRepository(db, Mapper[domain.News]{
		Table:    "news",
		IDColumn: "news_id",
		Columns:  []string{"title", "content", "author", "publish_date"},
		Scan: func(row RowScanner) (*domain.News, error) {
			var n domain.News
			if err := row.Scan(&n.NewsID, &n.Title, &n.Content, &n.Author, &n.PublishDate); err != nil {
				return nil, err
			}
			return &n, nil
		},
		Values: func(n *domain.News) []any {
			return []any{n.Title, n.Content, n.Author, n.PublishDate}
		},
		UpdateColumns: []string{"title", "content", "author"},
		UpdateValues: func(n *domain.News) []any {
			return []any{n.Title, n.Content, n.Author}
		},
	})
}
