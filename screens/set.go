package screens

import (
	"context"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/resources"
)

// Handle is a Screen with its record type erased, so screens of different
// entities can live in one Set.
type Handle interface {
	Name() string
	Refresh(ctx context.Context) error
	EnsureLoaded(ctx context.Context) error
	MarkStale()
	GoTo(page int) error
	Next()
	Previous()
	ToggleMenu(itemID string)
	CloseMenu()
	Remove(itemID string) bool
	PageView() any
	Len() int
}

// Set is the group of list screens one signed-in admin works with.
type Set struct {
	screens map[string]Handle
}

func NewSet(handles ...Handle) *Set {

	set := &Set{screens: map[string]Handle{}}
	for _, handle := range handles {
		set.screens[handle.Name()] = handle
	}

	return set
}

func (s *Set) Get(name string) (Handle, error) {

	handle, ok := s.screens[name]
	if !ok {
		return nil, serverError.ResourceNotFoundError.New(name)
	}

	return handle, nil
}

// NewDashboard builds one screen per list resource of the catalog.
func NewDashboard(catalog *resources.Catalog, pageSize int) (*Set, error) {

	if pageSize < 1 {
		return nil, serverError.PageSizeInvalidError.New()
	}

	employees, _ := New[objects.Employee]("employees", catalog.Employees, pageSize)
	contacts, _ := New[objects.Contact]("contacts", catalog.Contacts, pageSize)
	reachUs, _ := New[objects.ReachUs]("reachus", catalog.ReachUs, pageSize)
	subscribers, _ := New[objects.Subscriber]("subscribers", catalog.Subscribers, pageSize)
	skills, _ := New[objects.Skill]("skills", catalog.Skills, pageSize)
	services, _ := New[objects.Service]("services", catalog.Services, pageSize)
	sectionItems, _ := New[objects.SectionItem]("it-services", catalog.SectionItems, pageSize)
	heroes, _ := New[objects.Hero]("heroes", catalog.Heroes, pageSize)

	return NewSet(employees, contacts, reachUs, subscribers, skills, services, sectionItems, heroes), nil
}
