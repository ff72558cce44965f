package domain

// Team is an age-bracketed squad within a club.
type Team struct {
	TeamID      int64   `json:"team_id"`
	ClubID      *int64  `json:"club_id"`
	Name        *string `json:"name"`
	AgeCategory *string `json:"age_category"`
}
