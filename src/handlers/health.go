package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyenscilik/cms-admin/src/apiclient"
)

// HealthHandler reports process liveness and remote API reachability.
type HealthHandler struct {
	client *apiclient.Client
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(client *apiclient.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// HandleHealth handles GET /healthz.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	apiStatus := "reachable"
	if err := h.client.Ping(c.Request.Context()); err != nil {
		apiStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"api":    apiStatus,
	})
}
