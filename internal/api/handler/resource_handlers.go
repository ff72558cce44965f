package handler

import (
	"time"

	"github.com/geoyouth/league-api/internal/core/domain"
	"github.com/geoyouth/league-api/internal/core/ports"
)

// One constructor per league resource, binding its repository, display name
// and request schema.

func NewClubHandler(repo ports.ResourceRepository[domain.Club]) *ResourceHandler[domain.Club, clubRequest] {
	return NewResourceHandler[domain.Club, clubRequest](repo, "Club", (*clubRequest).toDomain, nil)
}

func NewTeamHandler(repo ports.ResourceRepository[domain.Team]) *ResourceHandler[domain.Team, teamRequest] {
	return NewResourceHandler[domain.Team, teamRequest](repo, "Team", (*teamRequest).toDomain, nil)
}

func NewPlayerHandler(repo ports.ResourceRepository[domain.Player]) *ResourceHandler[domain.Player, playerRequest] {
	return NewResourceHandler[domain.Player, playerRequest](repo, "Player", (*playerRequest).toDomain, nil)
}

func NewCoachHandler(repo ports.ResourceRepository[domain.Coach]) *ResourceHandler[domain.Coach, coachRequest] {
	return NewResourceHandler[domain.Coach, coachRequest](repo, "Coach", (*coachRequest).toDomain, nil)
}

func NewTournamentHandler(repo ports.ResourceRepository[domain.Tournament]) *ResourceHandler[domain.Tournament, tournamentRequest] {
	return NewResourceHandler[domain.Tournament, tournamentRequest](repo, "Tournament", (*tournamentRequest).toDomain, nil)
}

// NewNewsHandler defaults publish_date to the creation time when the request
// does not supply one.
func NewNewsHandler(repo ports.ResourceRepository[domain.News]) *ResourceHandler[domain.News, newsRequest] {
	return NewResourceHandler[domain.News, newsRequest](repo, "News", (*newsRequest).toDomain, func(n *domain.News) {
		if n.PublishDate == nil {
			n.PublishDate = domain.NewDate(time.Now().UTC())
		}
	})
}
