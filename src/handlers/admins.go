package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/oyenscilik/cms-admin/src/cache"
	"github.com/oyenscilik/cms-admin/src/gateway"
	"github.com/oyenscilik/cms-admin/src/models"
)

// AdminsHandler drives the admin-users CRUD screen.
type AdminsHandler struct {
	gw      *gateway.AdminUsersGateway
	query   *cache.Query[[]models.AdminUser]
	caches  *cache.Registry
	flashes *Flashes
}

// NewAdminsHandler creates the admin users screen handler.
func NewAdminsHandler(gw *gateway.AdminUsersGateway, query *cache.Query[[]models.AdminUser], caches *cache.Registry, flashes *Flashes) *AdminsHandler {
	return &AdminsHandler{gw: gw, query: query, caches: caches, flashes: flashes}
}

// AdminsPage is the admin-users screen view model.
type AdminsPage struct {
	PageData
	Admins  []models.AdminUser
	Loading bool
	State   ScreenState
	Form    AdminForm
	EditID  string
	Confirm *ConfirmDelete
}

// Show renders the screen; modal state comes from the URL. The password
// field always starts empty when editing; leaving it empty means the stored
// password is not touched.
func (h *AdminsHandler) Show(c *gin.Context) {
	admins, loading, err := h.query.Get(c.Request.Context())
	if err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		log.Error().Err(err).Msg("failed to load admin users")
		h.flashes.Error(c, "Gagal memuat data admin")
	}

	page := AdminsPage{
		PageData: h.pageData(c),
		Admins:   admins,
		Loading:  loading,
		State:    StateIdle,
	}

	switch {
	case c.Query("modal") == "create":
		page.State = StateCreating
		page.Form.Role = string(models.RoleAdmin)
	case c.Query("edit") != "":
		id := c.Query("edit")
		for _, a := range admins {
			if a.ID == id {
				page.State = StateEditing
				page.EditID = id
				page.Form = AdminForm{
					Name:  a.Name,
					Email: a.Email,
					Role:  string(a.Role),
				}
				break
			}
		}
	case c.Query("confirm-delete") != "":
		id := c.Query("confirm-delete")
		for _, a := range admins {
			if a.ID == id {
				page.Confirm = &ConfirmDelete{ID: id, Label: a.Name}
				break
			}
		}
	}

	c.HTML(http.StatusOK, "admins.tmpl", page)
}

// Create submits the modal form. Password is required here, the API rejects
// an account without one.
func (h *AdminsHandler) Create(c *gin.Context) {
	form := adminFormFrom(c)

	req := models.CreateAdminUserRequest{
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
		Role:     models.Role(form.Role),
	}

	if _, err := h.gw.Create(c.Request.Context(), req); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateCreating, "", form, errorMessage(err, "Gagal menambahkan admin"))
		return
	}

	h.caches.Invalidate(models.KeyAdmins)
	h.flashes.Success(c, "Admin berhasil ditambahkan")
	c.Redirect(http.StatusSeeOther, "/dashboard/admins")
}

// Update submits the edit form. The password field is included in the
// payload only when the admin typed a new one; an empty field means "no
// change", never "clear password".
func (h *AdminsHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form := adminFormFrom(c)

	role := models.Role(form.Role)
	req := models.UpdateAdminUserRequest{
		Email: &form.Email,
		Name:  &form.Name,
		Role:  &role,
	}
	if form.Password != "" {
		req.Password = &form.Password
	}

	if _, err := h.gw.Update(c.Request.Context(), id, req); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateEditing, id, form, errorMessage(err, "Gagal mengupdate admin"))
		return
	}

	h.caches.Invalidate(models.KeyAdmins)
	h.flashes.Success(c, "Admin berhasil diupdate")
	c.Redirect(http.StatusSeeOther, "/dashboard/admins")
}

// Delete removes one account after explicit confirmation.
func (h *AdminsHandler) Delete(c *gin.Context) {
	if c.PostForm("confirmed") != "true" {
		c.String(http.StatusBadRequest, "penghapusan harus dikonfirmasi")
		return
	}

	id := c.Param("id")
	if err := h.gw.Delete(c.Request.Context(), id); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.flashes.Error(c, errorMessage(err, "Gagal menghapus admin"))
		c.Redirect(http.StatusSeeOther, "/dashboard/admins")
		return
	}

	h.caches.Invalidate(models.KeyAdmins)
	h.flashes.Success(c, "Admin berhasil dihapus")
	c.Redirect(http.StatusSeeOther, "/dashboard/admins")
}

func (h *AdminsHandler) renderWithError(c *gin.Context, state ScreenState, editID string, form AdminForm, msg string) {
	admins, loading, err := h.query.Get(c.Request.Context())
	if err != nil && redirectIfUnauthorized(c, err) {
		return
	}

	// The typed password is not echoed back into the failed form.
	form.Password = ""

	page := AdminsPage{
		PageData: h.pageData(c),
		Admins:   admins,
		Loading:  loading,
		State:    state,
		EditID:   editID,
		Form:     form,
	}
	page.Toasts = append(page.Toasts, Toast{Kind: "error", Text: msg})
	c.HTML(http.StatusOK, "admins.tmpl", page)
}

func (h *AdminsHandler) pageData(c *gin.Context) PageData {
	return PageData{
		Title:      "Admin Users",
		BasePath:   "/dashboard/admins",
		Nav:        navItems("/dashboard/admins"),
		AdminName:  c.GetString("admin_name"),
		AdminEmail: c.GetString("admin_email"),
		Toasts:     h.flashes.Take(c),
	}
}

func adminFormFrom(c *gin.Context) AdminForm {
	return AdminForm{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
		Role:     c.PostForm("role"),
	}
}
