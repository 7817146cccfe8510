package handlers

import (
	"net/http"
	"net/url"
	"testing"
)

func TestLoginSuccessStoresSessionAndRedirects(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("/admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"accessToken":"tok-new","user":{"id":"usr_1","name":"Admin Utama","email":"admin@oyenscilik.com","role":"admin"}}}`))
	})
	app := newTestApp(t, api)
	if err := app.sessions.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	w := app.postForm("/login", url.Values{
		"email":    {"admin@oyenscilik.com"},
		"password": {"rahasia"},
	})

	assertRedirect(t, w, "/dashboard")
	_, token, ok := app.sessions.Current()
	if !ok || token != "tok-new" {
		t.Errorf("expected stored token 'tok-new', got %q (ok=%v)", token, ok)
	}
}

func TestLoginFailureKeepsEmailAndShowsMessage(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("/admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Email atau password salah"}`))
	})
	app := newTestApp(t, api)
	if err := app.sessions.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	w := app.postForm("/login", url.Values{
		"email":    {"admin@oyenscilik.com"},
		"password": {"salah"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected re-rendered login page, got %d", w.Code)
	}
	// A 401 on the login call itself is still a failed login, shown with the
	// generic message since no session existed to tear down
	assertBodyContains(t, w, "Login gagal")
	assertBodyContains(t, w, `value="admin@oyenscilik.com"`)
	if app.sessions.IsAuthenticated() {
		t.Error("failed login must not create a session")
	}
}

func TestLoginValidationMessageShownVerbatim(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("/admin/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Email tidak valid"}`))
	})
	app := newTestApp(t, api)
	if err := app.sessions.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	w := app.postForm("/login", url.Values{"email": {"bukan-email"}, "password": {"x"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected re-rendered login page, got %d", w.Code)
	}
	assertBodyContains(t, w, "Email tidak valid")
}

func TestShowLoginRedirectsWhenAuthenticated(t *testing.T) {
	app := newTestApp(t, http.NewServeMux())

	w := app.get("/login")

	assertRedirect(t, w, "/dashboard")
}

func TestLogoutClearsSessionEvenIfRemoteFails(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("/admin/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	app := newTestApp(t, api)

	w := app.postForm("/logout", url.Values{})

	assertRedirect(t, w, "/login")
	if app.sessions.IsAuthenticated() {
		t.Error("local session must be cleared even when remote logout fails")
	}
}
