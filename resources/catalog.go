package resources

import (
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

func NewContactsResource(client *remote.Client) BaseResource[objects.Contact] {
	return BaseResource[objects.Contact]{
		Client: client,
		Name:   "contacts",
		Paths:  Paths{List: "/contact/contact_us"},
	}
}

func NewReachUsResource(client *remote.Client) BaseResource[objects.ReachUs] {
	return BaseResource[objects.ReachUs]{
		Client: client,
		Name:   "reachus",
		Paths:  Paths{List: "/reach/getAllReachUs"},
	}
}

func NewSubscribersResource(client *remote.Client) BaseResource[objects.Subscriber] {
	return BaseResource[objects.Subscriber]{
		Client: client,
		Name:   "subscribers",
		Paths:  Paths{List: "/newsLetter/all"},
	}
}

func NewHeroesResource(client *remote.Client) BaseResource[objects.Hero] {
	return BaseResource[objects.Hero]{
		Client: client,
		Name:   "heroes",
		Paths: Paths{
			List:   "/dynamic/hero",
			Delete: "/dynamic/hero/%s",
		},
	}
}

func NewReviewsResource(client *remote.Client) BaseResource[objects.Review] {
	return BaseResource[objects.Review]{
		Client: client,
		Name:   "reviews",
		Paths: Paths{
			Get:    "/dynamic/review/%s",
			Update: "/dynamic/review/%s",
		},
	}
}

// NewCountsResource reads the dashboard metric cards; the API wraps them in "data".
func NewCountsResource(client *remote.Client) BaseResource[objects.Count] {
	return BaseResource[objects.Count]{
		Client: client,
		Name:   "counts",
		Paths:  Paths{List: "/auth/getAllCounts"},
	}
}

// Catalog is every resource of the dashboard, sharing one remote client.
type Catalog struct {
	Employees    *EmployeesResource
	Contacts     BaseResource[objects.Contact]
	ReachUs      BaseResource[objects.ReachUs]
	Subscribers  BaseResource[objects.Subscriber]
	Skills       *SkillsResource
	Services     *ServicesResource
	SectionItems *SectionItemsResource
	Heroes       BaseResource[objects.Hero]
	Reviews      BaseResource[objects.Review]
	Counts       BaseResource[objects.Count]
}

func NewCatalog(client *remote.Client) *Catalog {

	return &Catalog{
		Employees:    NewEmployeesResource(client),
		Contacts:     NewContactsResource(client),
		ReachUs:      NewReachUsResource(client),
		Subscribers:  NewSubscribersResource(client),
		Skills:       NewSkillsResource(client),
		Services:     NewServicesResource(client),
		SectionItems: NewSectionItemsResource(client),
		Heroes:       NewHeroesResource(client),
		Reviews:      NewReviewsResource(client),
		Counts:       NewCountsResource(client),
	}
}
