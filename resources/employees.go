package resources

import (
	"context"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

// EmployeesResource manages team members. Writes go out as multipart
// uploads because they may carry a profile image.
type EmployeesResource struct {
	BaseResource[objects.Employee]
}

func NewEmployeesResource(client *remote.Client) *EmployeesResource {

	return &EmployeesResource{
		BaseResource: BaseResource[objects.Employee]{
			Client: client,
			Name:   "employees",
			Paths: Paths{
				List:   "/dynamic/team/",
				Get:    "/dynamic/team/%s",
				Create: "/dynamic/team",
				Update: "/dynamic/team/%s",
				Delete: "/dynamic/team/%s",
			},
		},
	}
}

// InsertWithImage creates an employee. A profile image is mandatory.
func (r EmployeesResource) InsertWithImage(ctx context.Context, employee objects.Employee, image *remote.FilePart) error {

	if err := Validate(employee); err != nil {
		return err
	}

	if image == nil {
		return serverError.InvalidArgumentError.New("Please upload a profile image.")
	}

	form := remote.Form{
		Fields: employee.FormFields(),
		Files:  []remote.FilePart{*image},
	}

	return r.Client.PostMultipart(ctx, r.Paths.Create, form, nil)
}

// UpdateWithImage edits an employee, replacing the image only when one is given.
func (r EmployeesResource) UpdateWithImage(ctx context.Context, employee objects.Employee, image *remote.FilePart) error {

	if err := Validate(employee); err != nil {
		return err
	}

	form := remote.Form{Fields: employee.FormFields()}
	if image != nil {
		form.Files = append(form.Files, *image)
	}

	err := r.Client.PutMultipart(ctx, itemPath(r.Paths.Update, employee.GetID()), form, nil)
	return notFoundAsObjectID(err, employee.GetID())
}

func (r EmployeesResource) Insert(ctx context.Context, employee objects.Employee) error {
	return r.InsertWithImage(ctx, employee, nil)
}

func (r EmployeesResource) Update(ctx context.Context, employee objects.Employee) error {
	return r.UpdateWithImage(ctx, employee, nil)
}
