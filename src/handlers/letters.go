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

// LettersHandler drives the alphabet CRUD screen.
type LettersHandler struct {
	gw      *gateway.ContentGateway[models.Letter]
	query   *cache.Query[[]models.Letter]
	caches  *cache.Registry
	flashes *Flashes
}

// NewLettersHandler creates the letters screen handler.
func NewLettersHandler(gw *gateway.ContentGateway[models.Letter], query *cache.Query[[]models.Letter], caches *cache.Registry, flashes *Flashes) *LettersHandler {
	return &LettersHandler{gw: gw, query: query, caches: caches, flashes: flashes}
}

// LettersPage is the letters screen view model.
type LettersPage struct {
	PageData
	Letters []models.Letter
	Loading bool
	State   ScreenState
	Form    LetterForm
	EditID  int
	Confirm *ConfirmDelete
}

// Show renders the screen. The modal state lives in the URL: ?modal=create
// opens an empty form, ?edit=<id> pre-fills from the selected record, and
// ?confirm-delete=<id> shows the blocking delete confirmation.
func (h *LettersHandler) Show(c *gin.Context) {
	letters, loading, err := h.query.Get(c.Request.Context())
	if err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		log.Error().Err(err).Msg("failed to load letters")
		h.flashes.Error(c, "Gagal memuat data huruf")
	}

	page := LettersPage{
		PageData: h.pageData(c),
		Letters:  letters,
		Loading:  loading,
		State:    StateIdle,
	}

	switch {
	case c.Query("modal") == "create":
		page.State = StateCreating
	case c.Query("edit") != "":
		id, convErr := strconv.Atoi(c.Query("edit"))
		if convErr == nil {
			for _, l := range letters {
				if l.ID == id {
					page.State = StateEditing
					page.EditID = id
					page.Form = LetterForm{
						Letter:        l.Letter,
						LetterLower:   l.LetterLower,
						ExampleWord:   l.ExampleWord,
						Pronunciation: l.Pronunciation,
						AudioURL:      l.AudioURL,
						ImageURL:      l.ImageURL,
					}
					break
				}
			}
		}
	case c.Query("confirm-delete") != "":
		id, convErr := strconv.Atoi(c.Query("confirm-delete"))
		if convErr == nil {
			for _, l := range letters {
				if l.ID == id {
					page.Confirm = &ConfirmDelete{ID: strconv.Itoa(id), Label: l.Letter}
					break
				}
			}
		}
	}

	c.HTML(http.StatusOK, "letters.tmpl", page)
}

// Create submits the modal form. On success the list cache is invalidated
// and the screen returns to idle; on failure the modal re-renders with the
// entered values intact.
func (h *LettersHandler) Create(c *gin.Context) {
	form := letterFormFrom(c)
	letter := form.toModel()

	if _, err := h.gw.Create(c.Request.Context(), letter); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateCreating, 0, form, errorMessage(err, "Gagal menambahkan huruf"))
		return
	}

	h.caches.Invalidate(models.KeyLetters)
	h.flashes.Success(c, "Huruf berhasil ditambahkan")
	c.Redirect(http.StatusSeeOther, "/dashboard/letters")
}

// Update submits the edit form for one record.
func (h *LettersHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/letters")
		return
	}

	form := letterFormFrom(c)
	letter := form.toModel()

	if _, err := h.gw.Update(c.Request.Context(), id, letter); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateEditing, id, form, errorMessage(err, "Gagal mengupdate huruf"))
		return
	}

	h.caches.Invalidate(models.KeyLetters)
	h.flashes.Success(c, "Huruf berhasil diupdate")
	c.Redirect(http.StatusSeeOther, "/dashboard/letters")
}

// Delete removes one record. The request must come from the confirmation
// dialog: without confirmed=true the delete is refused.
func (h *LettersHandler) Delete(c *gin.Context) {
	if c.PostForm("confirmed") != "true" {
		c.String(http.StatusBadRequest, "penghapusan harus dikonfirmasi")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/letters")
		return
	}

	if err := h.gw.Delete(c.Request.Context(), id); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.flashes.Error(c, errorMessage(err, "Gagal menghapus huruf"))
		c.Redirect(http.StatusSeeOther, "/dashboard/letters")
		return
	}

	h.caches.Invalidate(models.KeyLetters)
	h.flashes.Success(c, "Huruf berhasil dihapus")
	c.Redirect(http.StatusSeeOther, "/dashboard/letters")
}

// renderWithError re-renders the screen with the modal still open, the
// submitted values preserved, and the error toast shown inline.
func (h *LettersHandler) renderWithError(c *gin.Context, state ScreenState, editID int, form LetterForm, msg string) {
	letters, loading, err := h.query.Get(c.Request.Context())
	if err != nil && redirectIfUnauthorized(c, err) {
		return
	}

	page := LettersPage{
		PageData: h.pageData(c),
		Letters:  letters,
		Loading:  loading,
		State:    state,
		EditID:   editID,
		Form:     form,
	}
	page.Toasts = append(page.Toasts, Toast{Kind: "error", Text: msg})
	c.HTML(http.StatusOK, "letters.tmpl", page)
}

func (h *LettersHandler) pageData(c *gin.Context) PageData {
	return PageData{
		Title:      "Letters (Huruf)",
		BasePath:   "/dashboard/letters",
		Nav:        navItems("/dashboard/letters"),
		AdminName:  c.GetString("admin_name"),
		AdminEmail: c.GetString("admin_email"),
		Toasts:     h.flashes.Take(c),
	}
}

// letterFormFrom binds the posted modal fields, normalizing case the way the
// form does: uppercase for the letter, lowercase for its pair.
func letterFormFrom(c *gin.Context) LetterForm {
	return LetterForm{
		Letter:        strings.ToUpper(strings.TrimSpace(c.PostForm("letter"))),
		LetterLower:   strings.ToLower(strings.TrimSpace(c.PostForm("letterLower"))),
		ExampleWord:   strings.TrimSpace(c.PostForm("exampleWord")),
		Pronunciation: strings.TrimSpace(c.PostForm("pronunciation")),
		AudioURL:      strings.TrimSpace(c.PostForm("audioUrl")),
		ImageURL:      strings.TrimSpace(c.PostForm("imageUrl")),
	}
}

func (f LetterForm) toModel() models.Letter {
	return models.Letter{
		Letter:        f.Letter,
		LetterLower:   f.LetterLower,
		ExampleWord:   f.ExampleWord,
		Pronunciation: f.Pronunciation,
		AudioURL:      f.AudioURL,
		ImageURL:      f.ImageURL,
	}
}
