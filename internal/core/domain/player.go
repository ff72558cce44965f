package domain

// Player is a registered league player assigned to a team.
type Player struct {
	PlayerID  int64   `json:"player_id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	BirthDate *Date   `json:"birth_date"`
	Position  *string `json:"position"`
	TeamID    *int64  `json:"team_id"`
}
