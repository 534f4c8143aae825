package domain

// Volunteer is a volunteer account as stored in the volunteers collection.
type Volunteer struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Surname           string  `json:"surname"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	Phone             string  `json:"phone"`
	Location          string  `json:"location"`
	ProfilePictureURL string  `json:"profilePictureUrl"`
	Interests         string  `json:"interests"`
	Skills            string  `json:"skills"`
	Availability      string  `json:"availability"`
	IsApproved        bool    `json:"isApproved"`
	Rating            float64 `json:"rating"`
	RatingCount       int     `json:"ratingCount"`
	CreatedAt         int64   `json:"createdAt"`
	UpdatedAt         int64   `json:"updatedAt"`
}

// FullName returns "Name Surname".
func (v *Volunteer) FullName() string {
	return v.Name + " " + v.Surname
}
