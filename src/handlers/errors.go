package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyenscilik/cms-admin/src/apiclient"
)

// redirectIfUnauthorized handles the global 401 contract: the API client has
// already torn the session down, so the only thing left is the navigation to
// the login screen. Returns true when the request was redirected.
func redirectIfUnauthorized(c *gin.Context, err error) bool {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return true
	}
	return false
}

// redirectable reports whether err is the 401 teardown signal.
func redirectable(err error) bool {
	return errors.Is(err, apiclient.ErrUnauthorized)
}

// errorMessage maps a gateway error onto the toast text: a 4xx message from
// the server is surfaced verbatim, anything else gets the screen's generic
// fallback. No retry is attempted anywhere.
func errorMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.IsClientError() && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
