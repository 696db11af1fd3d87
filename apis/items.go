package apis

import (
	"bytes"
	"context"
	"encoding/json"
	stdErrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
	"github.com/supakorn-kn/go-dashboard/resources"
)

type getter[T any] interface {
	GetByID(ctx context.Context, itemID string) (T, error)
}

type inserter[T any] interface {
	Insert(ctx context.Context, item T) error
}

type updater[T any] interface {
	Update(ctx context.Context, item T) error
}

type deleter interface {
	Delete(ctx context.Context, itemID string) error
}

// resourceAPI serves JSON item routes for any resource of the catalog.
// Operations the resource does not implement answer OperationUnsupported.
type resourceAPI[T resources.Item] struct {
	name    string
	resolve func(*resources.Catalog) any
}

func newResourceAPI[T resources.Item](name string, resolve func(*resources.Catalog) any) resourceAPI[T] {
	return resourceAPI[T]{name: name, resolve: resolve}
}

func (a resourceAPI[T]) resource(ctx *gin.Context) any {
	return a.resolve(dashboardOf(ctx).Catalog)
}

func (a resourceAPI[T]) Insert(ctx *gin.Context) error {

	resource, ok := a.resource(ctx).(inserter[T])
	if !ok {
		return errors.OperationUnsupportedError.New("create", a.name)
	}

	var item T
	if err := ctx.ShouldBindJSON(&item); err != nil {
		return errors.InvalidArgumentError.New(err)
	}

	if err := resource.Insert(ctx.Request.Context(), item); err != nil {
		return err
	}

	markStale(ctx, a.name)
	return nil
}

func (a resourceAPI[T]) ReadOne(itemID string, ctx *gin.Context) (*T, error) {

	resource, ok := a.resource(ctx).(getter[T])
	if !ok {
		return nil, errors.OperationUnsupportedError.New("get", a.name)
	}

	item, err := resource.GetByID(ctx.Request.Context(), itemID)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (a resourceAPI[T]) Update(itemID string, ctx *gin.Context) error {

	resource, ok := a.resource(ctx).(updater[T])
	if !ok {
		return errors.OperationUnsupportedError.New("update", a.name)
	}

	item, err := bindWithID[T](ctx, itemID)
	if err != nil {
		return err
	}

	if err := resource.Update(ctx.Request.Context(), item); err != nil {
		return err
	}

	markStale(ctx, a.name)
	return nil
}

func (a resourceAPI[T]) Delete(itemID string, ctx *gin.Context) error {

	resource, ok := a.resource(ctx).(deleter)
	if !ok {
		return errors.OperationUnsupportedError.New("delete", a.name)
	}

	if err := resource.Delete(ctx.Request.Context(), itemID); err != nil {
		return err
	}

	removeRow(ctx, a.name, itemID)
	return nil
}

// bindWithID decodes a JSON body into T with its "_id" taken from the route.
func bindWithID[T any](ctx *gin.Context, itemID string) (item T, err error) {

	var fields map[string]any
	if err = ctx.ShouldBindJSON(&fields); err != nil {
		err = errors.InvalidArgumentError.New(err)
		return
	}

	fields["_id"] = itemID

	raw, err := json.Marshal(fields)
	if err != nil {
		return
	}

	if err = json.Unmarshal(raw, &item); err != nil {
		err = errors.InvalidArgumentError.New(err)
	}

	return
}

// employeesAPI takes multipart forms, since team members carry a profile image.
type employeesAPI struct {
	resourceAPI[objects.Employee]
}

func newEmployeesAPI() employeesAPI {

	return employeesAPI{
		resourceAPI: newResourceAPI[objects.Employee]("employees", func(c *resources.Catalog) any { return c.Employees }),
	}
}

func (a employeesAPI) Insert(ctx *gin.Context) error {

	var employee objects.Employee
	if err := ctx.ShouldBind(&employee); err != nil {
		return errors.InvalidArgumentError.New(err)
	}

	image, err := formImage(ctx)
	if err != nil {
		return err
	}

	err = dashboardOf(ctx).Catalog.Employees.InsertWithImage(ctx.Request.Context(), employee, image)
	if err != nil {
		return err
	}

	markStale(ctx, a.name)
	return nil
}

func (a employeesAPI) Update(itemID string, ctx *gin.Context) error {

	var employee objects.Employee
	if err := ctx.ShouldBind(&employee); err != nil {
		return errors.InvalidArgumentError.New(err)
	}

	employee.EmployeeID = itemID

	image, err := formImage(ctx)
	if err != nil {
		return err
	}

	err = dashboardOf(ctx).Catalog.Employees.UpdateWithImage(ctx.Request.Context(), employee, image)
	if err != nil {
		return err
	}

	markStale(ctx, a.name)
	return nil
}

// formImage reads the optional "image" file of a multipart request.
func formImage(ctx *gin.Context) (*remote.FilePart, error) {

	header, err := ctx.FormFile("image")
	if stdErrors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.InvalidArgumentError.New(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.InvalidArgumentError.New(err)
	}

	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.InvalidArgumentError.New(err)
	}

	return &remote.FilePart{
		Field:    "image",
		Filename: header.Filename,
		Content:  bytes.NewReader(content),
	}, nil
}

// registerSectionItemsAPI serves IT services and products, which the
// remote API addresses by kind as well as by ID.
func registerSectionItemsAPI(group *gin.RouterGroup) {

	const name = "it-services"

	group.POST("", func(ctx *gin.Context) {

		var item objects.SectionItem
		if err := ctx.ShouldBindJSON(&item); err != nil {
			writeErrorJSON(ctx, errors.InvalidArgumentError.New(err))
			return
		}

		if err := dashboardOf(ctx).Catalog.SectionItems.Insert(ctx.Request.Context(), item); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		markStale(ctx, name)
		ctx.JSON(http.StatusCreated, OKResponse)
	})

	group.GET(":kind/:id", func(ctx *gin.Context) {

		item, err := dashboardOf(ctx).Catalog.SectionItems.GetByKind(ctx.Request.Context(), ctx.Param("kind"), ctx.Param("id"))
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, CRUDResponse{Result: item})
	})

	group.PUT(":kind/:id", func(ctx *gin.Context) {

		item, err := bindWithID[objects.SectionItem](ctx, ctx.Param("id"))
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		item.Kind = ctx.Param("kind")

		if err := dashboardOf(ctx).Catalog.SectionItems.Update(ctx.Request.Context(), item); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		markStale(ctx, name)
		ctx.JSON(http.StatusOK, OKResponse)
	})

	group.DELETE(":kind/:id", func(ctx *gin.Context) {

		itemID := ctx.Param("id")

		if err := dashboardOf(ctx).Catalog.SectionItems.DeleteByKind(ctx.Request.Context(), ctx.Param("kind"), itemID); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		removeRow(ctx, name, itemID)
		ctx.JSON(http.StatusOK, OKResponse)
	})
}
