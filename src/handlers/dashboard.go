package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/oyenscilik/cms-admin/src/cache"
	"github.com/oyenscilik/cms-admin/src/models"
)

// DashboardHandler renders the read-only aggregation view. It issues one
// query per resource plus the stat queries concurrently; each figure renders
// independently, with its zero value standing in when its query fails.
type DashboardHandler struct {
	letters  *cache.Query[[]models.Letter]
	numbers  *cache.Query[[]models.NumberContent]
	animals  *cache.Query[[]models.Animal]
	admins   *cache.Query[[]models.AdminUser]
	stats    *cache.Query[models.DashboardStats]
	activity *cache.Query[[]models.ActivityEntry]
	learners *cache.Query[[]models.TopLearner]
	flashes  *Flashes
}

// NewDashboardHandler creates the dashboard handler over the shared cache
// entries.
func NewDashboardHandler(
	letters *cache.Query[[]models.Letter],
	numbers *cache.Query[[]models.NumberContent],
	animals *cache.Query[[]models.Animal],
	admins *cache.Query[[]models.AdminUser],
	stats *cache.Query[models.DashboardStats],
	activity *cache.Query[[]models.ActivityEntry],
	learners *cache.Query[[]models.TopLearner],
	flashes *Flashes,
) *DashboardHandler {
	return &DashboardHandler{
		letters:  letters,
		numbers:  numbers,
		animals:  animals,
		admins:   admins,
		stats:    stats,
		activity: activity,
		learners: learners,
		flashes:  flashes,
	}
}

// Show renders the dashboard. No mutations, no invalidation duties. Content
// counts come from the cached lists; learner aggregates come only from the
// stats endpoints.
func (h *DashboardHandler) Show(c *gin.Context) {
	page := DashboardPage{
		PageData: PageData{
			Title:      "Dashboard",
			BasePath:   "/dashboard",
			Nav:        navItems("/dashboard"),
			AdminName:  c.GetString("admin_name"),
			AdminEmail: c.GetString("admin_email"),
			Toasts:     h.flashes.Take(c),
		},
	}

	ctx := c.Request.Context()
	var g errgroup.Group

	// Every branch swallows its own error: one slow or failing endpoint must
	// not take the whole dashboard down.
	g.Go(func() error {
		if letters, _, err := h.letters.Get(ctx); err == nil {
			page.LetterCount = len(letters)
		} else if redirectable(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if numbers, _, err := h.numbers.Get(ctx); err == nil {
			page.NumberCount = len(numbers)
		} else if redirectable(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if animals, _, err := h.animals.Get(ctx); err == nil {
			page.AnimalCount = len(animals)
		} else if redirectable(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if admins, _, err := h.admins.Get(ctx); err == nil {
			page.AdminCount = len(admins)
		} else if redirectable(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if stats, _, err := h.stats.Get(ctx); err == nil {
			page.Stats = stats
		} else if redirectable(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if activity, _, err := h.activity.Get(ctx); err == nil {
			page.Activity = activity
		} else if redirectable(err) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if learners, _, err := h.learners.Get(ctx); err == nil {
			page.TopLearners = learners
		} else if redirectable(err) {
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if redirectIfUnauthorized(c, err) {
			return
		}
		log.Error().Err(err).Msg("dashboard query failed")
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", page)
}
