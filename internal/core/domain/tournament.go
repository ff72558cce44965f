package domain

// Tournament is a competition matches are scheduled under.
type Tournament struct {
	TournamentID int64   `json:"tournament_id"`
	Name         *string `json:"name"`
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	Location     *string `json:"location"`
}
