package resources

import (
	"context"
	"strings"

	serverError "github.com/supakorn-kn/go-dashboard/errors"
	"github.com/supakorn-kn/go-dashboard/objects"
	"github.com/supakorn-kn/go-dashboard/remote"
)

const (
	serviceSectionsPath = "/dynamic/serviceSection"
	sectionItemsPath    = "/dynamic/serviceSection/%s/%s"
	sectionItemPath     = "/dynamic/serviceSection/%s/%s/%s"
	sectionDeletePath   = "/dynamic/serviceSection/%s/%s"
)

// SectionItemsResource lists the IT services and products of every service
// section as one table, each row tagged with its kind.
type SectionItemsResource struct {
	client  *remote.Client
	parents *parentTracker
}

func NewSectionItemsResource(client *remote.Client) *SectionItemsResource {
	return &SectionItemsResource{client: client, parents: &parentTracker{}}
}

func (SectionItemsResource) GetName() string {
	return "it-services"
}

// kindSegment maps an item kind to the path segment the API uses for it.
func kindSegment(kind string) (string, error) {

	switch strings.ToLower(kind) {
	case objects.ServiceItemKind:
		return "itServices", nil
	case objects.ProductItemKind:
		return "products", nil
	default:
		return "", serverError.ItemKindInvalidError.New(kind)
	}
}

func (r SectionItemsResource) List(ctx context.Context) ([]objects.SectionItem, error) {

	body, err := r.client.GetRaw(ctx, serviceSectionsPath)
	if err != nil {
		return nil, err
	}

	// The API answers with the one service section rather than a list.
	sections, err := remote.DecodeOneOrMany[objects.ServiceSection](serviceSectionsPath, body)
	if err != nil {
		return nil, err
	}

	items := []objects.SectionItem{}
	for _, section := range sections {

		for _, item := range section.ITServices {
			item.Kind = objects.ServiceItemKind
			items = append(items, item)
		}

		for _, item := range section.Products {
			item.Kind = objects.ProductItemKind
			items = append(items, item)
		}
	}

	if len(sections) > 0 {
		r.parents.set(sections[0].SectionID)
	} else {
		r.parents.set("")
	}

	return items, nil
}

func (r SectionItemsResource) parentID(ctx context.Context) (string, error) {

	if parentID := r.parents.get(); parentID != "" {
		return parentID, nil
	}

	if _, err := r.List(ctx); err != nil {
		return "", err
	}

	if parentID := r.parents.get(); parentID != "" {
		return parentID, nil
	}

	return "", serverError.ParentSectionMissingError.New("it-services")
}

func (r SectionItemsResource) GetByKind(ctx context.Context, kind, itemID string) (item objects.SectionItem, err error) {

	segment, err := kindSegment(kind)
	if err != nil {
		return
	}

	parentID, err := r.parentID(ctx)
	if err != nil {
		return
	}

	err = r.client.Get(ctx, itemPath(sectionItemPath, parentID, segment, itemID), &item)
	if err != nil {
		err = notFoundAsObjectID(err, itemID)
		return
	}

	item.Kind = strings.ToLower(kind)
	return
}

func (r SectionItemsResource) Insert(ctx context.Context, item objects.SectionItem) error {

	segment, err := kindSegment(item.Kind)
	if err != nil {
		return err
	}

	if err := Validate(item); err != nil {
		return err
	}

	parentID, err := r.parentID(ctx)
	if err != nil {
		return err
	}

	return r.client.Post(ctx, itemPath(sectionItemsPath, parentID, segment), sectionItemBody(item), nil)
}

func (r SectionItemsResource) Update(ctx context.Context, item objects.SectionItem) error {

	segment, err := kindSegment(item.Kind)
	if err != nil {
		return err
	}

	if err := Validate(item); err != nil {
		return err
	}

	parentID, err := r.parentID(ctx)
	if err != nil {
		return err
	}

	err = r.client.Put(ctx, itemPath(sectionItemPath, parentID, segment, item.GetID()), sectionItemBody(item), nil)
	return notFoundAsObjectID(err, item.GetID())
}

// DeleteByKind removes an item; the API addresses it by kind alone, without the parent.
func (r SectionItemsResource) DeleteByKind(ctx context.Context, kind, itemID string) error {

	if _, err := kindSegment(kind); err != nil {
		return err
	}

	err := r.client.Delete(ctx, itemPath(sectionDeletePath, strings.ToLower(kind)+"s", itemID))
	return notFoundAsObjectID(err, itemID)
}

func sectionItemBody(item objects.SectionItem) objects.SectionItem {
	return objects.SectionItem{Title: item.Title, Description: item.Description, Icon: item.Icon}
}
