package domain

// MatchStatus represents the lifecycle state of a match.
type MatchStatus string

const (
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

// Match is a fixture between two teams within a tournament. Status doubles
// as the filter predicate for the paginated listing endpoint.
type Match struct {
	MatchID      int64   `json:"match_id"`
	Team1ID      *int64  `json:"team1_id"`
	Team2ID      *int64  `json:"team2_id"`
	TournamentID *int64  `json:"tournament_id"`
	MatchDate    *Date   `json:"match_date"`
	ScoreTeam1   *int64  `json:"score_team1"`
	ScoreTeam2   *int64  `json:"score_team2"`
	Status       *string `json:"status"`
	Venue        *string `json:"venue"`
}
