package store

import (
	"time"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// Seed returns the fixture data set used when no prior snapshot
// exists. It mirrors the original client's first-run data so a fresh
// server presents the same starting board. Nothing else depends on
// these particular values.
func Seed() domain.AppData {
	now := time.Now()

	tags := []domain.Tag{
		{ID: "1", Label: "Funny", Color: "#FCD34D"},
		{ID: "2", Label: "Family-oriented", Color: "#6EE7B7"},
		{ID: "3", Label: "Introvert", Color: "#93C5FD"},
		{ID: "4", Label: "Extrovert", Color: "#F87171"},
		{ID: "5", Label: "Ambitious", Color: "#C4B5FD"},
	}

	candidates := []domain.Candidate{
		{
			ID:           "c1",
			Name:         "Sarah Jenkins",
			Age:          28,
			Gender:       "Female",
			City:         "Munich",
			Job:          "UX Designer",
			Status:       domain.StatusChatting,
			Tags:         []domain.Tag{tags[0], tags[2]},
			NotesSummary: "Loves hiking and coffee.",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "c2",
			Name:         "Michael Chen",
			Age:          31,
			Gender:       "Male",
			City:         "Berlin",
			Job:          "Software Engineer",
			Status:       domain.StatusMetOnce,
			Tags:         []domain.Tag{tags[1], tags[4]},
			NotesSummary: "Very polite, good conversation about tech.",
			CreatedAt:    now.Add(-24 * time.Hour),
			UpdatedAt:    now,
		},
	}

	return domain.AppData{
		Candidates:   candidates,
		Notes:        []domain.Note{},
		Interactions: []domain.Interaction{},
		Tags:         tags,
	}
}
