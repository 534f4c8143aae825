package domain

// Organization is an organization account as stored in the organizations
// collection.
type Organization struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Domain            string  `json:"domain"`
	Location          string  `json:"location"`
	Website           string  `json:"website"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	Phone             string  `json:"phone"`
	ProfilePictureURL string  `json:"profilePictureUrl"`
	MemberCount       int     `json:"memberCount"`
	FoundedYear       int     `json:"foundedYear"`
	IsApproved        bool    `json:"isApproved"`
	Rating            float64 `json:"rating"`
	RatingCount       int     `json:"ratingCount"`
	FollowersCount    int     `json:"followersCount"`
	Tags              string  `json:"tags"`
	CreatedAt         int64   `json:"createdAt"`
	UpdatedAt         int64   `json:"updatedAt"`
}
