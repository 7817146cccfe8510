package gateway

import (
	"context"
	"strconv"

	"github.com/oyenscilik/cms-admin/src/apiclient"
	"github.com/oyenscilik/cms-admin/src/models"
)

// ContentGateway wraps one learning-content resource. Reads go through the
// public /content paths, mutations through /admin/content. All three content
// resources share the same shape, so one typed gateway covers them.
type ContentGateway[T any] struct {
	client    *apiclient.Client
	readPath  string
	adminPath string
}

// NewLettersGateway creates the gateway for alphabet content.
func NewLettersGateway(client *apiclient.Client) *ContentGateway[models.Letter] {
	return &ContentGateway[models.Letter]{
		client:    client,
		readPath:  "/content/letters",
		adminPath: "/admin/content/letters",
	}
}

// NewNumbersGateway creates the gateway for number content.
func NewNumbersGateway(client *apiclient.Client) *ContentGateway[models.NumberContent] {
	return &ContentGateway[models.NumberContent]{
		client:    client,
		readPath:  "/content/numbers",
		adminPath: "/admin/content/numbers",
	}
}

// NewAnimalsGateway creates the gateway for animal content.
func NewAnimalsGateway(client *apiclient.Client) *ContentGateway[models.Animal] {
	return &ContentGateway[models.Animal]{
		client:    client,
		readPath:  "/content/animals",
		adminPath: "/admin/content/animals",
	}
}

// List returns every entry of the resource.
func (g *ContentGateway[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := g.client.Get(ctx, g.readPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one entry by id.
func (g *ContentGateway[T]) Get(ctx context.Context, id int) (*T, error) {
	var out T
	if err := g.client.Get(ctx, g.readPath+"/"+strconv.Itoa(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a new entry; the server assigns the id.
func (g *ContentGateway[T]) Create(ctx context.Context, item T) (*T, error) {
	var out T
	if err := g.client.Post(ctx, g.adminPath, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the editable fields of an existing entry.
func (g *ContentGateway[T]) Update(ctx context.Context, id int, item T) (*T, error) {
	var out T
	if err := g.client.Put(ctx, g.adminPath+"/"+strconv.Itoa(id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an entry. No undo.
func (g *ContentGateway[T]) Delete(ctx context.Context, id int) error {
	return g.client.Delete(ctx, g.adminPath+"/"+strconv.Itoa(id))
}
