package services

import (
	"time"

	"github.com/prajwalshetti/Project-matrimony/src/models"
)

// Card projections mirror what the client renders for the other party.
// summaryCard is used on send/accept responses, listingCard on request and
// connection listings, detailCard only on the single-connection view.

func summaryCard(u *models.User) models.ProfileCard {
	return models.ProfileCard{
		Id:           u.Id,
		Name:         u.Name,
		ProfilePhoto: u.ProfilePhoto,
		Occupation:   u.Occupation,
		CurrentCity:  u.CurrentCity,
	}
}

func listingCard(u *models.User, now time.Time) models.ProfileCard {
	card := summaryCard(u)
	card.Age = u.Age(now)
	card.Education = u.Education
	return card
}

func detailCard(u *models.User, now time.Time) models.ProfileCard {
	card := listingCard(u, now)
	card.Email = u.Email
	return card
}
