package gateway

import (
	"context"

	"github.com/oyenscilik/cms-admin/src/apiclient"
	"github.com/oyenscilik/cms-admin/src/models"
)

// AdminUsersGateway wraps the /admin/users endpoints.
type AdminUsersGateway struct {
	client *apiclient.Client
}

// NewAdminUsersGateway creates the admin users gateway.
func NewAdminUsersGateway(client *apiclient.Client) *AdminUsersGateway {
	return &AdminUsersGateway{client: client}
}

// List returns all admin accounts.
func (g *AdminUsersGateway) List(ctx context.Context) ([]models.AdminUser, error) {
	var out []models.AdminUser
	if err := g.client.Get(ctx, "/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one admin account by id.
func (g *AdminUsersGateway) Get(ctx context.Context, id string) (*models.AdminUser, error) {
	var out models.AdminUser
	if err := g.client.Get(ctx, "/admin/users/"+id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a new admin account.
func (g *AdminUsersGateway) Create(ctx context.Context, req models.CreateAdminUserRequest) (*models.AdminUser, error) {
	var out models.AdminUser
	if err := g.client.Post(ctx, "/admin/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update. A nil Password in req leaves the stored
// password unchanged.
func (g *AdminUsersGateway) Update(ctx context.Context, id string, req models.UpdateAdminUserRequest) (*models.AdminUser, error) {
	var out models.AdminUser
	if err := g.client.Put(ctx, "/admin/users/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an admin account.
func (g *AdminUsersGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, "/admin/users/"+id)
}
