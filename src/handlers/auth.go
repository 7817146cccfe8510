package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/oyenscilik/cms-admin/src/gateway"
	"github.com/oyenscilik/cms-admin/src/session"
)

// AuthHandler drives the login screen and the logout control.
type AuthHandler struct {
	authGW   *gateway.AuthGateway
	sessions session.Store
	flashes  *Flashes
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(authGW *gateway.AuthGateway, sessions session.Store, flashes *Flashes) *AuthHandler {
	return &AuthHandler{authGW: authGW, sessions: sessions, flashes: flashes}
}

// LoginPage is the login screen's view model.
type LoginPage struct {
	Email  string
	Error  string
	Toasts []Toast
}

// ShowLogin renders the login screen. An already-authenticated admin goes
// straight to the dashboard.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if h.sessions.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", LoginPage{Toasts: h.flashes.Take(c)})
}

// Login exchanges the submitted credentials for a session. On failure the
// screen re-renders with the server's message and the typed email intact so
// the admin can correct and resubmit.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	resp, err := h.authGW.Login(c.Request.Context(), email, password)
	if err != nil {
		log.Warn().Str("email", email).Err(err).Msg("login failed")
		c.HTML(http.StatusOK, "login.tmpl", LoginPage{
			Email: email,
			Error: errorMessage(err, "Login gagal"),
		})
		return
	}

	if err := h.sessions.SetAuth(resp.User, resp.AccessToken); err != nil {
		log.Error().Err(err).Msg("failed to persist session")
		c.HTML(http.StatusOK, "login.tmpl", LoginPage{
			Email: email,
			Error: "Gagal menyimpan sesi login",
		})
		return
	}

	h.flashes.Success(c, fmt.Sprintf("Selamat datang, %s!", resp.User.Name))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session and returns to the login screen. The server-side
// token invalidation is best effort; the local session is destroyed either
// way.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authGW.Logout(c.Request.Context()); err != nil {
		log.Warn().Err(err).Msg("remote logout failed")
	}
	if err := h.sessions.Logout(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
