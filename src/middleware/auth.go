package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyenscilik/cms-admin/src/session"
)

// RequireAuth gatekeeps every protected route. The session store is checked
// before the handler runs so protected content is never rendered for an
// unauthenticated visitor, not even momentarily.
func RequireAuth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		user, _, _ := sessions.Current()
		c.Set("admin_name", user.Name)
		c.Set("admin_email", user.Email)
		c.Set("admin_role", string(user.Role))
		c.Next()
	}
}
