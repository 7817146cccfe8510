package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const flashCookie = "cms-flash"

// Flashes carries toast notifications across the redirect after a mutation,
// backed by a signed cookie so nothing is kept server-side.
type Flashes struct {
	store *sessions.CookieStore
}

// NewFlashes creates the flash store with the given signing secret.
func NewFlashes(secret string) *Flashes {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.Path = "/"
	return &Flashes{store: store}
}

// Success queues a success toast for the next render.
func (f *Flashes) Success(c *gin.Context, msg string) {
	f.add(c, "success", msg)
}

// Error queues an error toast for the next render.
func (f *Flashes) Error(c *gin.Context, msg string) {
	f.add(c, "error", msg)
}

func (f *Flashes) add(c *gin.Context, kind, msg string) {
	sess, _ := f.store.Get(c.Request, flashCookie)
	sess.AddFlash(msg, kind)
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Warn().Err(err).Msg("failed to save flash cookie")
	}
}

// Take returns and clears all queued toasts.
func (f *Flashes) Take(c *gin.Context) []Toast {
	sess, _ := f.store.Get(c.Request, flashCookie)

	var toasts []Toast
	for _, kind := range []string{"success", "error"} {
		for _, v := range sess.Flashes(kind) {
			if msg, ok := v.(string); ok {
				toasts = append(toasts, Toast{Kind: kind, Text: msg})
			}
		}
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		log.Warn().Err(err).Msg("failed to clear flash cookie")
	}
	return toasts
}
