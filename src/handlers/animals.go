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

// AnimalsHandler drives the animals CRUD screen.
type AnimalsHandler struct {
	gw      *gateway.ContentGateway[models.Animal]
	query   *cache.Query[[]models.Animal]
	caches  *cache.Registry
	flashes *Flashes
}

// NewAnimalsHandler creates the animals screen handler.
func NewAnimalsHandler(gw *gateway.ContentGateway[models.Animal], query *cache.Query[[]models.Animal], caches *cache.Registry, flashes *Flashes) *AnimalsHandler {
	return &AnimalsHandler{gw: gw, query: query, caches: caches, flashes: flashes}
}

// AnimalsPage is the animals screen view model.
type AnimalsPage struct {
	PageData
	Animals []models.Animal
	Loading bool
	State   ScreenState
	Form    AnimalForm
	EditID  int
	Confirm *ConfirmDelete
}

// Show renders the screen; modal state comes from the URL.
func (h *AnimalsHandler) Show(c *gin.Context) {
	animals, loading, err := h.query.Get(c.Request.Context())
	if err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		log.Error().Err(err).Msg("failed to load animals")
		h.flashes.Error(c, "Gagal memuat data hewan")
	}

	page := AnimalsPage{
		PageData: h.pageData(c),
		Animals:  animals,
		Loading:  loading,
		State:    StateIdle,
	}

	switch {
	case c.Query("modal") == "create":
		page.State = StateCreating
		page.Form.Difficulty = string(models.DifficultyEasy)
	case c.Query("edit") != "":
		id, convErr := strconv.Atoi(c.Query("edit"))
		if convErr == nil {
			for _, a := range animals {
				if a.ID == id {
					page.State = StateEditing
					page.EditID = id
					page.Form = AnimalForm{
						Name:        a.Name,
						NameEnglish: a.NameEnglish,
						Description: a.Description,
						FunFact:     a.FunFact,
						Difficulty:  string(a.Difficulty),
						Emoji:       a.Emoji,
						ImageURL:    a.ImageURL,
						AudioURL:    a.AudioURL,
					}
					break
				}
			}
		}
	case c.Query("confirm-delete") != "":
		id, convErr := strconv.Atoi(c.Query("confirm-delete"))
		if convErr == nil {
			for _, a := range animals {
				if a.ID == id {
					page.Confirm = &ConfirmDelete{ID: strconv.Itoa(id), Label: a.Name}
					break
				}
			}
		}
	}

	c.HTML(http.StatusOK, "animals.tmpl", page)
}

// Create submits the modal form.
func (h *AnimalsHandler) Create(c *gin.Context) {
	form := animalFormFrom(c)
	animal := form.toModel()

	if _, err := h.gw.Create(c.Request.Context(), animal); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateCreating, 0, form, errorMessage(err, "Gagal menambahkan hewan"))
		return
	}

	h.caches.Invalidate(models.KeyAnimals)
	h.flashes.Success(c, "Hewan berhasil ditambahkan")
	c.Redirect(http.StatusSeeOther, "/dashboard/animals")
}

// Update submits the edit form for one record.
func (h *AnimalsHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/animals")
		return
	}

	form := animalFormFrom(c)
	animal := form.toModel()

	if _, err := h.gw.Update(c.Request.Context(), id, animal); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.renderWithError(c, StateEditing, id, form, errorMessage(err, "Gagal mengupdate hewan"))
		return
	}

	h.caches.Invalidate(models.KeyAnimals)
	h.flashes.Success(c, "Hewan berhasil diupdate")
	c.Redirect(http.StatusSeeOther, "/dashboard/animals")
}

// Delete removes one record after explicit confirmation.
func (h *AnimalsHandler) Delete(c *gin.Context) {
	if c.PostForm("confirmed") != "true" {
		c.String(http.StatusBadRequest, "penghapusan harus dikonfirmasi")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard/animals")
		return
	}

	if err := h.gw.Delete(c.Request.Context(), id); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		h.flashes.Error(c, errorMessage(err, "Gagal menghapus hewan"))
		c.Redirect(http.StatusSeeOther, "/dashboard/animals")
		return
	}

	h.caches.Invalidate(models.KeyAnimals)
	h.flashes.Success(c, "Hewan berhasil dihapus")
	c.Redirect(http.StatusSeeOther, "/dashboard/animals")
}

func (h *AnimalsHandler) renderWithError(c *gin.Context, state ScreenState, editID int, form AnimalForm, msg string) {
	animals, loading, err := h.query.Get(c.Request.Context())
	if err != nil && redirectIfUnauthorized(c, err) {
		return
	}

	page := AnimalsPage{
		PageData: h.pageData(c),
		Animals:  animals,
		Loading:  loading,
		State:    state,
		EditID:   editID,
		Form:     form,
	}
	page.Toasts = append(page.Toasts, Toast{Kind: "error", Text: msg})
	c.HTML(http.StatusOK, "animals.tmpl", page)
}

func (h *AnimalsHandler) pageData(c *gin.Context) PageData {
	return PageData{
		Title:      "Animals (Hewan)",
		BasePath:   "/dashboard/animals",
		Nav:        navItems("/dashboard/animals"),
		AdminName:  c.GetString("admin_name"),
		AdminEmail: c.GetString("admin_email"),
		Toasts:     h.flashes.Take(c),
	}
}

func animalFormFrom(c *gin.Context) AnimalForm {
	return AnimalForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		NameEnglish: strings.TrimSpace(c.PostForm("nameEnglish")),
		Description: strings.TrimSpace(c.PostForm("description")),
		FunFact:     strings.TrimSpace(c.PostForm("funFact")),
		Difficulty:  c.PostForm("difficulty"),
		Emoji:       strings.TrimSpace(c.PostForm("emoji")),
		ImageURL:    strings.TrimSpace(c.PostForm("imageUrl")),
		AudioURL:    strings.TrimSpace(c.PostForm("audioUrl")),
	}
}

func (f AnimalForm) toModel() models.Animal {
	return models.Animal{
		Name:        f.Name,
		NameEnglish: f.NameEnglish,
		Description: f.Description,
		FunFact:     f.FunFact,
		Difficulty:  models.Difficulty(f.Difficulty),
		Emoji:       f.Emoji,
		ImageURL:    f.ImageURL,
		AudioURL:    f.AudioURL,
	}
}
