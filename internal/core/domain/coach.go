package domain

// Coach is a team coach.
//
// Unlike the other resources, Coach updates are coalescing: a field omitted
// from the request keeps its stored value instead of being nulled out.
type Coach struct {
	CoachID   int64   `json:"coach_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	BirthDate *Date   `json:"birth_date"`
	TeamID    *int64  `json:"team_id"`
}
