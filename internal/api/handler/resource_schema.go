package handler

import "github.com/geoyouth/league-api/internal/core/domain"

// One request schema per resource. The same schema serves create and update:
// create validates the required-field tags before any storage access, update
// binds without validation because full-replace writes whatever was sent
// (and Coach's coalescing update has no required fields by definition).

type clubRequest struct {
	Name    *string `json:"name" validate:"required"`
	LogoURL *string `json:"logo_url"`
	City    *string `json:"city" validate:"required"`
}

func (r *clubRequest) toDomain() *domain.Club {
	return &domain.Club{Name: r.Name, LogoURL: r.LogoURL, City: r.City}
}

type teamRequest struct {
	ClubID      *int64  `json:"club_id" validate:"required"`
	Name        *string `json:"name" validate:"required"`
	AgeCategory *string `json:"age_category" validate:"required"`
}

func (r *teamRequest) toDomain() *domain.Team {
	return &domain.Team{ClubID: r.ClubID, Name: r.Name, AgeCategory: r.AgeCategory}
}

type playerRequest struct {
	FirstName *string      `json:"first_name" validate:"required"`
	LastName  *string      `json:"last_name" validate:"required"`
	BirthDate *domain.Date `json:"birth_date" validate:"required"`
	Position  *string      `json:"position" validate:"required"`
	TeamID    *int64       `json:"team_id" validate:"required"`
}

func (r *playerRequest) toDomain() *domain.Player {
	return &domain.Player{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Position:  r.Position,
		TeamID:    r.TeamID,
	}
}

type coachRequest struct {
	FirstName *string      `json:"first_name" validate:"required"`
	LastName  *string      `json:"last_name" validate:"required"`
	BirthDate *domain.Date `json:"birth_date"`
	TeamID    *int64       `json:"team_id" validate:"required"`
}

func (r *coachRequest) toDomain() *domain.Coach {
	return &domain.Coach{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		TeamID:    r.TeamID,
	}
}

type matchRequest struct {
	Team1ID      *int64       `json:"team1_id" validate:"required"`
	Team2ID      *int64       `json:"team2_id" validate:"required"`
	TournamentID *int64       `json:"tournament_id" validate:"required"`
	MatchDate    *domain.Date `json:"match_date" validate:"required"`
	ScoreTeam1   *int64       `json:"score_team1"`
	ScoreTeam2   *int64       `json:"score_team2"`
	Status       *string      `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Venue        *string      `json:"venue"`
}

func (r *matchRequest) toDomain() *domain.Match {
	return &domain.Match{
		Team1ID:      r.Team1ID,
		Team2ID:      r.Team2ID,
		TournamentID: r.TournamentID,
		MatchDate:    r.MatchDate,
		ScoreTeam1:   r.ScoreTeam1,
		ScoreTeam2:   r.ScoreTeam2,
		Status:       r.Status,
		Venue:        r.Venue,
	}
}

type tournamentRequest struct {
	Name      *string      `json:"name" validate:"required"`
	StartDate *domain.Date `json:"start_date" validate:"required"`
	EndDate   *domain.Date `json:"end_date"`
	Location  *string      `json:"location"`
}

func (r *tournamentRequest) toDomain() *domain.Tournament {
	return &domain.Tournament{
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Location:  r.Location,
	}
}

type newsRequest struct {
	Title       *string      `json:"title" validate:"required"`
	Content     *string      `json:"content" validate:"required"`
	Author      *string      `json:"author"`
	PublishDate *domain.Date `json:"publish_date"`
}

func (r *newsRequest) toDomain() *domain.News {
	return &domain.News{
		Title:       r.Title,
		Content:     r.Content,
		Author:      r.Author,
		PublishDate: r.PublishDate,
	}
}
