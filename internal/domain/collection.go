package domain

// Collection names used by the volunteering platform. Records are stored flat
// under these paths, keyed by their identifier.
const (
	CollectionVolunteers        = "volunteers"
	CollectionOrganizations     = "organizations"
	CollectionPosts             = "posts"
	CollectionRatings           = "ratings"
	CollectionVolunteerRequests = "volunteer_requests"
	CollectionFollows           = "follows"
	CollectionNotifications     = "notifications"
	CollectionPostViews         = "post_views"
)

// Collections lists every collection the platform uses.
var Collections = []string{
	CollectionVolunteers,
	CollectionOrganizations,
	CollectionPosts,
	CollectionRatings,
	CollectionVolunteerRequests,
	CollectionFollows,
	CollectionNotifications,
	CollectionPostViews,
}

// Kind is a record kind written by the seeder.
type Kind struct {
	Collection string // remote path segment, e.g. "volunteers"
	Singular   string // human label, e.g. "volunteer"
	Plural     string // human label, e.g. "volunteers"
}

// Seeded record kinds.
var (
	KindVolunteer    = Kind{Collection: CollectionVolunteers, Singular: "volunteer", Plural: "volunteers"}
	KindOrganization = Kind{Collection: CollectionOrganizations, Singular: "organization", Plural: "organizations"}
	KindPost         = Kind{Collection: CollectionPosts, Singular: "post", Plural: "posts"}
)
