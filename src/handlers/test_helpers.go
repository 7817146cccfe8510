package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oyenscilik/cms-admin/src/apiclient"
	"github.com/oyenscilik/cms-admin/src/cache"
	"github.com/oyenscilik/cms-admin/src/gateway"
	"github.com/oyenscilik/cms-admin/src/middleware"
	"github.com/oyenscilik/cms-admin/src/models"
	"github.com/oyenscilik/cms-admin/src/session"
)

// Test helpers for handler tests

// testApp wires the full handler stack against a fake API.
type testApp struct {
	router   *gin.Engine
	sessions *session.MemStore
	lettersQ *cache.Query[[]models.Letter]
}

// newTestApp builds the routes the way main does, pointed at the given fake
// API handler, with an already authenticated session.
func newTestApp(t *testing.T, api http.Handler) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	sessions := session.NewMemStore()
	if err := sessions.SetAuth(models.AdminUser{ID: "usr_1", Name: "Admin Utama", Email: "admin@oyenscilik.com", Role: models.RoleAdmin}, "tok-test"); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}

	client := apiclient.New(srv.URL, sessions)
	authGW := gateway.NewAuthGateway(client)
	lettersGW := gateway.NewLettersGateway(client)
	numbersGW := gateway.NewNumbersGateway(client)
	adminsGW := gateway.NewAdminUsersGateway(client)

	lettersQ := cache.NewQuery(models.KeyLetters, lettersGW.List)
	numbersQ := cache.NewQuery(models.KeyNumbers, numbersGW.List)
	adminsQ := cache.NewQuery(models.KeyAdmins, adminsGW.List)

	caches := cache.NewRegistry()
	caches.Register(lettersQ.Key(), lettersQ)
	caches.Register(numbersQ.Key(), numbersQ)
	caches.Register(adminsQ.Key(), adminsQ)

	flashes := NewFlashes("test-secret")

	authHandler := NewAuthHandler(authGW, sessions, flashes)
	lettersHandler := NewLettersHandler(lettersGW, lettersQ, caches, flashes)
	numbersHandler := NewNumbersHandler(numbersGW, numbersQ, caches, flashes)
	adminsHandler := NewAdminsHandler(adminsGW, adminsQ, caches, flashes)

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.ParseGlob("../templates/*.tmpl")))

	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	dash := router.Group("/dashboard")
	dash.Use(middleware.RequireAuth(sessions))
	dash.GET("/letters", lettersHandler.Show)
	dash.POST("/letters", lettersHandler.Create)
	dash.POST("/letters/:id/update", lettersHandler.Update)
	dash.POST("/letters/:id/delete", lettersHandler.Delete)
	dash.GET("/numbers", numbersHandler.Show)
	dash.POST("/numbers", numbersHandler.Create)
	dash.POST("/numbers/:id/update", numbersHandler.Update)
	dash.POST("/numbers/:id/delete", numbersHandler.Delete)
	dash.GET("/admins", adminsHandler.Show)
	dash.POST("/admins", adminsHandler.Create)
	dash.POST("/admins/:id/update", adminsHandler.Update)
	dash.POST("/admins/:id/delete", adminsHandler.Delete)

	return &testApp{router: router, sessions: sessions, lettersQ: lettersQ}
}

// get issues a GET and returns the recorder.
func (a *testApp) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// postForm issues a POST with urlencoded form values.
func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// assertRedirect checks for a 303 to the expected location.
func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != location {
		t.Errorf("expected redirect to %s, got %q", location, loc)
	}
}

// assertBodyContains checks the rendered page for a fragment.
func assertBodyContains(t *testing.T, w *httptest.ResponseRecorder, fragment string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), fragment) {
		t.Errorf("expected body to contain %q", fragment)
	}
}
