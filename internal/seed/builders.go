package seed

import (
	"math"
	"math/rand"
	"time"

	"github.com/tounesna/seeder/internal/domain"
)

// Ranges of the generated engagement metrics. Bounds are inclusive.
const (
	MinRating = 3.5
	MaxRating = 5.0

	MinVolunteerRatingCount = 5
	MaxVolunteerRatingCount = 20

	MinMemberCount = 10
	MaxMemberCount = 100

	MinFoundedYear = 2000
	MaxFoundedYear = 2023

	MinOrganizationRatingCount = 10
	MaxOrganizationRatingCount = 50

	MinFollowersCount = 50
	MaxFollowersCount = 500

	MinVolunteersNeeded = 5
	MaxVolunteersNeeded = 30

	// MaxPostAge is how far back a post's createdAt may be set.
	MaxPostAge = 30 * 24 * time.Hour
)

const volunteerAvailability = "Weekends, Evenings"

// BuildVolunteer completes a sample volunteer row.
func BuildVolunteer(row VolunteerRow, id string, rng *rand.Rand, now time.Time) domain.Volunteer {
	ts := now.UnixMilli()
	return domain.Volunteer{
		ID:                id,
		Name:              row.Name,
		Surname:           row.Surname,
		Email:             row.Email,
		Password:          Password,
		Phone:             row.Phone,
		Location:          row.Location,
		ProfilePictureURL: pick(rng, ImageURLs),
		Interests:         row.Interests,
		Skills:            row.Skills,
		Availability:      volunteerAvailability,
		IsApproved:        true,
		Rating:            rating(rng),
		RatingCount:       between(rng, MinVolunteerRatingCount, MaxVolunteerRatingCount),
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
}

// BuildOrganization completes a sample organization row.
func BuildOrganization(row OrganizationRow, id string, rng *rand.Rand, now time.Time) domain.Organization {
	ts := now.UnixMilli()
	return domain.Organization{
		ID:                id,
		Name:              row.Name,
		Domain:            string(row.Domain),
		Location:          row.Location,
		Website:           row.Website,
		Email:             row.Email,
		Password:          Password,
		Phone:             row.Phone,
		ProfilePictureURL: pick(rng, ImageURLs),
		MemberCount:       between(rng, MinMemberCount, MaxMemberCount),
		FoundedYear:       between(rng, MinFoundedYear, MaxFoundedYear),
		IsApproved:        true,
		Rating:            rating(rng),
		RatingCount:       between(rng, MinOrganizationRatingCount, MaxOrganizationRatingCount),
		FollowersCount:    between(rng, MinFollowersCount, MaxFollowersCount),
		Tags:              string(row.Domain) + ", Tunisia, Volunteer",
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
}

// BuildPost completes a sample post row published by organizationID.
func BuildPost(row PostRow, id, organizationID string, rng *rand.Rand, now time.Time) domain.Post {
	ts := now.UnixMilli()
	return domain.Post{
		ID:               id,
		OrganizationID:   organizationID,
		Title:            row.Title,
		Description:      row.Description,
		Category:         pick(rng, domain.Categories),
		Location:         pick(rng, Cities),
		ImageURL:         pick(rng, ImageURLs),
		VolunteersNeeded: between(rng, MinVolunteersNeeded, MaxVolunteersNeeded),
		Priority:         pick(rng, domain.Priorities),
		CreatedAt:        ts - rng.Int63n(MaxPostAge.Milliseconds()+1),
		UpdatedAt:        ts,
	}
}

// rating is uniform in [MinRating, MaxRating] rounded to one decimal.
func rating(rng *rand.Rand) float64 {
	r := MinRating + rng.Float64()*(MaxRating-MinRating)
	return math.Round(r*10) / 10
}

func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
