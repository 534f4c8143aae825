package domain

// Category classifies a post and an organization's domain.
type Category string

const (
	CategoryEducation     Category = "EDUCATION"
	CategoryHealth        Category = "HEALTH"
	CategoryEnvironment   Category = "ENVIRONMENT"
	CategorySocial        Category = "SOCIAL"
	CategoryAnimalWelfare Category = "ANIMAL_WELFARE"
	CategoryCommunity     Category = "COMMUNITY"
)

// Categories lists every post category in display order.
var Categories = []Category{
	CategoryEducation,
	CategoryHealth,
	CategoryEnvironment,
	CategorySocial,
	CategoryAnimalWelfare,
	CategoryCommunity,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Priority is the urgency of a post.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Post is a volunteering opportunity published by an organization.
type Post struct {
	ID               string   `json:"id"`
	OrganizationID   string   `json:"organizationId"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	Location         string   `json:"location"`
	ImageURL         string   `json:"imageUrl"`
	VolunteersNeeded int      `json:"volunteersNeeded"`
	Priority         Priority `json:"priority"`
	CreatedAt        int64    `json:"createdAt"`
	UpdatedAt        int64    `json:"updatedAt"`
}
