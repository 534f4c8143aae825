package verify

import "github.com/tounesna/seeder/internal/domain"

// Fixed ids of the test accounts. Writing them again replaces them.
const (
	TestVolunteerID    = "-TestVol123"
	TestOrganizationID = "-TestOrg456"
)

const testAccountTimestamp int64 = 1732587000000

// VolunteerAccount is a volunteer record whose interests and skills are
// lists, the shape the mobile app writes on sign-up.
type VolunteerAccount struct {
	domain.Volunteer
	Interests []string `json:"interests"`
	Skills    []string `json:"skills"`
}

// OrganizationAccount is an organization record with list tags.
type OrganizationAccount struct {
	domain.Organization
	Tags []string `json:"tags"`
}

// TestVolunteer is the volunteer account used for manual login checks.
func TestVolunteer() VolunteerAccount {
	return VolunteerAccount{
		Volunteer: domain.Volunteer{
			ID:           TestVolunteerID,
			Name:         "Test",
			Surname:      "Volunteer",
			Email:        "test@test.com",
			Password:     "test123",
			Phone:        "12345678",
			Location:     "Tunis",
			Availability: "Weekends",
			IsApproved:   true,
			CreatedAt:    testAccountTimestamp,
			UpdatedAt:    testAccountTimestamp,
		},
		Interests: []string{"Education", "Health"},
		Skills:    []string{"Teaching", "First Aid"},
	}
}

// TestOrganization is the organization account used for manual login checks.
func TestOrganization() OrganizationAccount {
	return OrganizationAccount{
		Organization: domain.Organization{
			ID:          TestOrganizationID,
			Name:        "Test Organization",
			Domain:      "Community Service",
			Location:    "Tunis",
			Website:     "https://test.org",
			Email:       "org@test.com",
			Password:    "org123",
			Phone:       "98765432",
			MemberCount: 10,
			FoundedYear: 2020,
			IsApproved:  true,
			CreatedAt:   testAccountTimestamp,
			UpdatedAt:   testAccountTimestamp,
		},
		Tags: []string{"Education", "Youth"},
	}
}
