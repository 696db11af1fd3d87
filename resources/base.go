package resources

import (
	"context"
	"fmt"
	"net/url"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/remote"
)

type Item interface {
	GetID() string
}

// Lister is what a list screen needs from a resource.
type Lister[T Item] interface {
	List(ctx context.Context) ([]T, error)
}

// Paths holds the remote endpoints of one resource. Item paths are
// formats taking the escaped item ID. An empty path marks the operation
// as unsupported by the remote API.
type Paths struct {
	List   string
	Get    string
	Create string
	Update string
	Delete string
}

type BaseResource[T Item] struct {
	Client *remote.Client
	Name   string
	Paths  Paths
}

func (r BaseResource[T]) GetName() string {
	return r.Name
}

func (r BaseResource[T]) List(ctx context.Context) ([]T, error) {

	if r.Paths.List == "" {
		return nil, serverError.OperationUnsupportedError.New("list", r.Name)
	}

	return remote.GetCollection[T](ctx, r.Client, r.Paths.List)
}

func (r BaseResource[T]) GetByID(ctx context.Context, itemID string) (item T, err error) {

	if r.Paths.Get == "" {
		err = serverError.OperationUnsupportedError.New("get", r.Name)
		return
	}

	err = r.Client.Get(ctx, itemPath(r.Paths.Get, itemID), &item)
	err = notFoundAsObjectID(err, itemID)

	return
}

func (r BaseResource[T]) Insert(ctx context.Context, item T) error {

	if r.Paths.Create == "" {
		return serverError.OperationUnsupportedError.New("create", r.Name)
	}

	if err := Validate(item); err != nil {
		return err
	}

	return r.Client.Post(ctx, r.Paths.Create, item, nil)
}

func (r BaseResource[T]) Update(ctx context.Context, item T) error {

	if r.Paths.Update == "" {
		return serverError.OperationUnsupportedError.New("update", r.Name)
	}

	if err := Validate(item); err != nil {
		return err
	}

	err := r.Client.Put(ctx, itemPath(r.Paths.Update, item.GetID()), item, nil)
	return notFoundAsObjectID(err, item.GetID())
}

func (r BaseResource[T]) Delete(ctx context.Context, itemID string) error {

	if r.Paths.Delete == "" {
		return serverError.OperationUnsupportedError.New("delete", r.Name)
	}

	err := r.Client.Delete(ctx, itemPath(r.Paths.Delete, itemID))
	return notFoundAsObjectID(err, itemID)
}

func itemPath(format string, ids ...string) string {

	escaped := make([]any, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}

	return fmt.Sprintf(format, escaped...)
}

// notFoundAsObjectID reports a 404 on an item route as the unknown item it is.
func notFoundAsObjectID(err error, itemID string) error {

	if serverError.HasCode(err, serverError.RemoteNotFoundErrorCode) {
		return serverError.ObjectIDNotFoundError.New(itemID)
	}

	return err
}
