package resources

import (
	"context"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

const (
	serviceGroupsPath = "/dynamic/service"
	servicePath       = "/dynamic/service/%s"
	serviceDeletePath = "/dynamic/service/service/%s"
	serviceCreatePath = "/dynamic/ourSkills/%s/service"
)

// ServicesResource flattens the service groups into one table of services.
type ServicesResource struct {
	client  *remote.Client
	parents *parentTracker
}

func NewServicesResource(client *remote.Client) *ServicesResource {
	return &ServicesResource{client: client, parents: &parentTracker{}}
}

func (ServicesResource) GetName() string {
	return "services"
}

func (r ServicesResource) List(ctx context.Context) ([]objects.Service, error) {

	groups, err := remote.GetCollection[objects.ServiceGroup](ctx, r.client, serviceGroupsPath)
	if err != nil {
		return nil, err
	}

	services := []objects.Service{}
	for _, group := range groups {
		services = append(services, group.Services...)
	}

	if len(groups) > 0 {
		r.parents.set(groups[0].GroupID)
	} else {
		r.parents.set("")
	}

	return services, nil
}

func (r ServicesResource) GetByID(ctx context.Context, serviceID string) (service objects.Service, err error) {

	err = r.client.Get(ctx, itemPath(servicePath, serviceID), &service)
	err = notFoundAsObjectID(err, serviceID)

	return
}

// InsertInto creates a service under parentID, or under the first listed
// group when parentID is empty.
func (r ServicesResource) InsertInto(ctx context.Context, parentID string, service objects.Service) error {

	if err := Validate(service); err != nil {
		return err
	}

	if parentID == "" {

		if _, err := r.List(ctx); err != nil {
			return err
		}

		parentID = r.parents.get()
		if parentID == "" {
			return serverError.ParentSectionMissingError.New("services")
		}
	}

	body := objects.Service{Title: service.Title, Description: service.Description}
	return r.client.Post(ctx, itemPath(serviceCreatePath, parentID), body, nil)
}

func (r ServicesResource) Insert(ctx context.Context, service objects.Service) error {
	return r.InsertInto(ctx, r.parents.get(), service)
}

func (r ServicesResource) Update(ctx context.Context, service objects.Service) error {

	if err := Validate(service); err != nil {
		return err
	}

	body := objects.Service{Title: service.Title, Description: service.Description}
	err := r.client.Put(ctx, itemPath(servicePath, service.GetID()), body, nil)
	return notFoundAsObjectID(err, service.GetID())
}

func (r ServicesResource) Delete(ctx context.Context, serviceID string) error {

	err := r.client.Delete(ctx, itemPath(serviceDeletePath, serviceID))
	return notFoundAsObjectID(err, serviceID)
}
