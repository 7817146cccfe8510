package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/oyenscilik/cms-admin/src/cache"
	"github.com/oyenscilik/cms-admin/src/gateway"
	"github.com/oyenscilik/cms-admin/src/models"
)

// NumbersHandler drives the numbers CRUD screen.
type NumbersHandler struct {
	gw      *gateway.ContentGateway[models.NumberContent]
	query   *cache.Query[[]models.NumberContent]
	caches  *cache.Registry
	flashes *Flashes
}

// NewNumbersHandler creates the numbers screen handler.
func NewNumbersHandler(gw *gateway.ContentGateway[models.NumberContent], query *cache.Query[[]models.NumberContent], caches *cache.Registry, flashes *Flashes) *NumbersHandler {
	return &NumbersHandler{gw: gw, query: query, caches: caches, flashes: flashes}
}

// NumbersPage is the numbers screen view model.
type NumbersPage struct {
	PageData
	Numbers []models.NumberContent
	Loading bool
	State   ScreenState
	Form    NumberForm
	EditID  int
	Confirm *ConfirmDelete
}

// Show renders the screen; modal state comes from the URL like the other
// resource screens.
func (h *NumbersHandler) Show(c *gin.Context) {
	numbers, loading, err := h.query.Get(c.Request.Context())
	if err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		log.Error().Err(err).Msg("failed to load numbers")
		h.flashes.Error(c, "Gagal memuat data angka")
	}

	page := NumbersPage{
		PageData: h.pageData(c),
		Numbers:  numbers,
		Loading:  loading,
		State:    StateIdle,
	}

	switch {
	case c.Query("modal") == "create":
		page.State = StateCreating
	case c.Query("edit") != "":
		id, convErr := strconv.Atoi(c.Query("edit"))
		if convErr == nil {
			for _, n := range numbers {
				if n.ID == id {
					page.State = StateEditing
					page.EditID = id
					page.Form = NumberForm{
						Value:         strconv.Itoa(n.Value),
						Word:          n.Word,
						Pronunciation: n.Pronunciation,
						AudioURL:      n.AudioURL,
						ImageURL:      n.ImageURL,
					}
					break
				}
			}
		}
	case c.Query("confirm-delete") != "":
		id, convErr := strconv.Atoi(c.Query("confirm-delete"))
		if convErr == nil {
			for _, n := range numbers {
				if n.ID == id {
					page.Confirm = &ConfirmDelete{ID: strconv.Itoa(id), Label: n.Word}
					break
				}
			}
		}
	}

	c.HTML(http.StatusOK, "numbers.tmpl", page)
}

// Create submits the modal form.
func (h *NumbersHandler) Create(c *gin.Context) {
	form := numberFormFrom(c)
	number, formErr := form.toModel()
	if formErr != "" {
		h.renderWithError(c, StateCreating, 0, form, formErr)
		return
	}

	if _, err := h.gw.Create(c.Request.Context(), number); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateCreating, 0, form, errorMessage(err, "Gagal menambahkan angka"))
		return
	}

	h.caches.Invalidate(models.KeyNumbers)
	h.flashes.Success(c, "Angka berhasil ditambahkan")
	c.Redirect(http.StatusSeeOther, "/dashboard/numbers")
}

// Update submits the edit form for one record.
func (h *NumbersHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/numbers")
		return
	}

	form := numberFormFrom(c)
	number, formErr := form.toModel()
	if formErr != "" {
		h.renderWithError(c, StateEditing, id, form, formErr)
		return
	}

	if _, err := h.gw.Update(c.Request.Context(), id, number); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateEditing, id, form, errorMessage(err, "Gagal mengupdate angka"))
		return
	}

	h.caches.Invalidate(models.KeyNumbers)
	h.flashes.Success(c, "Angka berhasil diupdate")
	c.Redirect(http.StatusSeeOther, "/dashboard/numbers")
}

// Delete removes one record after explicit confirmation.
func (h *NumbersHandler) Delete(c *gin.Context) {
	if c.PostForm("confirmed") != "true" {
		c.String(http.StatusBadRequest, "penghapusan harus dikonfirmasi")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/numbers")
		return
	}

	if err := h.gw.Delete(c.Request.Context(), id); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.flashes.Error(c, errorMessage(err, "Gagal menghapus angka"))
		c.Redirect(http.StatusSeeOther, "/dashboard/numbers")
		return
	}

	h.caches.Invalidate(models.KeyNumbers)
	h.flashes.Success(c, "Angka berhasil dihapus")
	c.Redirect(http.StatusSeeOther, "/dashboard/numbers")
}

func (h *NumbersHandler) renderWithError(c *gin.Context, state ScreenState, editID int, form NumberForm, msg string) {
	numbers, loading, err := h.query.Get(c.Request.Context())
	if err != nil && redirectIfUnauthorized(c, err) {
		return
	}

	page := NumbersPage{
		PageData: h.pageData(c),
		Numbers:  numbers,
		Loading:  loading,
		State:    state,
		EditID:   editID,
		Form:     form,
	}
	page.Toasts = append(page.Toasts, Toast{Kind: "error", Text: msg})
	c.HTML(http.StatusOK, "numbers.tmpl", page)
}

func (h *NumbersHandler) pageData(c *gin.Context) PageData {
	return PageData{
		Title:      "Numbers (Angka)",
		BasePath:   "/dashboard/numbers",
		Nav:        navItems("/dashboard/numbers"),
		AdminName:  c.GetString("admin_name"),
		AdminEmail: c.GetString("admin_email"),
		Toasts:     h.flashes.Take(c),
	}
}

func numberFormFrom(c *gin.Context) NumberForm {
	return NumberForm{
		Value:         strings.TrimSpace(c.PostForm("value")),
		Word:          strings.TrimSpace(c.PostForm("word")),
		Pronunciation: strings.TrimSpace(c.PostForm("pronunciation")),
		AudioURL:      strings.TrimSpace(c.PostForm("audioUrl")),
		ImageURL:      strings.TrimSpace(c.PostForm("imageUrl")),
	}
}

// toModel converts the form; the numeric value must parse or the modal stays
// open with a message. The API enforces the rest.
func (f NumberForm) toModel() (models.NumberContent, string) {
	value, err := strconv.Atoi(f.Value)
	if err != nil {
		return models.NumberContent{}, "Nilai angka tidak valid"
	}
	return models.NumberContent{
		Value:         value,
		Word:          f.Word,
		Pronunciation: f.Pronunciation,
		AudioURL:      f.AudioURL,
		ImageURL:      f.ImageURL,
	}, ""
}
