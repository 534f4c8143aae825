package seed

import "github.com/tounesna/seeder/internal/domain"

// VolunteerRow is the hand-authored part of a sample volunteer.
type VolunteerRow struct {
	Name      string
	Surname   string
	Email     string
	Phone     string
	Location  string
	Skills    string
	Interests string
}

// OrganizationRow is the hand-authored part of a sample organization.
type OrganizationRow struct {
	Name     string
	Domain   domain.Category
	Location string
	Website  string
	Email    string
	Phone    string
}

// PostRow is the hand-authored part of a sample post.
type PostRow struct {
	Title       string
	Description string
}

// Password given to every seeded account.
const Password = "test123"

// Cities are the Tunisian cities posts are placed in.
var Cities = []string{
	"Tunis", "Sfax", "Sousse", "Kairouan", "Bizerte",
	"Gabès", "Ariana", "Gafsa", "Monastir", "Ben Arous",
}

// ImageURLs is the pool of profile pictures and post images.
var ImageURLs = []string{
	"https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?w=800",
	"https://images.unsplash.com/photo-1488521787991-ed7bbaae773c?w=800",
	"https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800",
	"https://images.unsplash.com/photo-1532629345422-7515f3d16bb6?w=800",
	"https://images.unsplash.com/photo-1593113598332-cd288d649433?w=800",
	"https://i.imgur.com/HiHOhcB_d.webp?maxwidth=520&shape=thumb&fidelity=high",
}

var volunteerRows = []VolunteerRow{
	{Name: "Ahmed", Surname: "Ben Ali", Email: "ahmed@test.com", Phone: "+21612345601", Location: "Tunis", Skills: "Teaching, Community Work", Interests: "Education, Social"},
	{Name: "Fatma", Surname: "Trabelsi", Email: "fatma@test.com", Phone: "+21612345602", Location: "Sfax", Skills: "Healthcare, First Aid", Interests: "Health, Children"},
	{Name: "Mohamed", Surname: "Gharbi", Email: "mohamed@test.com", Phone: "+21612345603", Location: "Sousse", Skills: "Environmental Science", Interests: "Environment, Animals"},
	{Name: "Salma", Surname: "Mansour", Email: "salma@test.com", Phone: "+21612345604", Location: "Ariana", Skills: "Social Work, Psychology", Interests: "Social, Community"},
	{Name: "Youssef", Surname: "Kacem", Email: "youssef@test.com", Phone: "+21612345605", Location: "Monastir", Skills: "Teaching, Sports", Interests: "Education, Youth"},
}

var organizationRows = []OrganizationRow{
	{Name: "Tunisian Red Crescent", Domain: domain.CategoryHealth, Location: "Tunis", Website: "https://croissant-rouge.tn", Email: "contact@redcrescent.tn", Phone: "+21671234501"},
	{Name: "Green Tunisia", Domain: domain.CategoryEnvironment, Location: "Sfax", Website: "https://greentunisia.org", Email: "info@greentunisia.org", Phone: "+21674567801"},
	{Name: "Education For All", Domain: domain.CategoryEducation, Location: "Sousse", Website: "https://eduforall.tn", Email: "contact@eduforall.tn", Phone: "+21673456701"},
	{Name: "Tunisian Animal Shelter", Domain: domain.CategoryAnimalWelfare, Location: "Ariana", Website: "https://animalcare.tn", Email: "help@animalcare.tn", Phone: "+21671345601"},
	{Name: "Community Builders", Domain: domain.CategoryCommunity, Location: "Monastir", Website: "https://communitytn.org", Email: "contact@communitytn.org", Phone: "+21673234501"},
	{Name: "Hope Foundation", Domain: domain.CategorySocial, Location: "Bizerte", Website: "https://hope.tn", Email: "info@hope.tn", Phone: "+21672123401"},
}

var postRows = []PostRow{
	{Title: "Urgent: Medical Volunteers Needed", Description: "We urgently need volunteers to assist with our medical outreach program."},
	{Title: "Beach Cleanup Drive - Join Us!", Description: "Join us for a beach cleanup to protect our marine environment!"},
	{Title: "Teaching Children in Rural Areas", Description: "Help us teach basic education to children in underserved communities."},
	{Title: "Animal Shelter Needs Help", Description: "Our animal shelter needs volunteers for daily care and feeding."},
	{Title: "Community Center Renovation", Description: "Help renovate our community center to serve more people."},
	{Title: "Food Distribution for Families", Description: "Assist in distributing food packages to families in need."},
	{Title: "Tree Planting Campaign", Description: "Plant trees with us to fight climate change and beautify Tunisia."},
	{Title: "Free Medical Checkup Camp", Description: "Medical professionals needed for free health checkup camp."},
	{Title: "Sports Event for Youth", Description: "Organize and supervise sports activities for underprivileged youth."},
	{Title: "Charity Marathon Registration", Description: "Register now for our annual charity marathon event!"},
	{Title: "Elderly Care Volunteers Wanted", Description: "Spend time with elderly people and brighten their day."},
	{Title: "Clothing Drive for Winter", Description: "Help collect and distribute warm clothing for winter season."},
	{Title: "Library Setup in School", Description: "Set up a community library in a local school."},
	{Title: "Blood Donation Camp", Description: "Volunteer as a blood donor and save lives."},
	{Title: "Street Art for Awareness", Description: "Create awareness through street art on social issues."},
}

// VolunteerRows returns a copy of the sample volunteers.
func VolunteerRows() []VolunteerRow { return append([]VolunteerRow(nil), volunteerRows...) }

// OrganizationRows returns a copy of the sample organizations.
func OrganizationRows() []OrganizationRow {
	return append([]OrganizationRow(nil), organizationRows...)
}

// PostRows returns a copy of the sample posts.
func PostRows() []PostRow { return append([]PostRow(nil), postRows...) }
