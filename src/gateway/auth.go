package gateway

import (
	"context"

	"github.com/oyenscilik/cms-admin/src/apiclient"
	"github.com/oyenscilik/cms-admin/src/models"
)

// AuthGateway wraps the admin authentication endpoints.
type AuthGateway struct {
	client *apiclient.Client
}

// NewAuthGateway creates the auth gateway.
func NewAuthGateway(client *apiclient.Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// LoginRequest is the credential payload for POST /admin/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token and the authenticated admin.
type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	User        models.AdminUser `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	if err := g.client.Post(ctx, "/admin/auth/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the admin the current token belongs to.
func (g *AuthGateway) Me(ctx context.Context) (*models.AdminUser, error) {
	var out models.AdminUser
	if err := g.client.Get(ctx, "/admin/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the token server-side. The local session is cleared by
// the caller regardless of the outcome.
func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.client.Post(ctx, "/admin/auth/logout", nil, nil)
}
