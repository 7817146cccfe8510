package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oyenscilik/cms-admin/src/models"
	"github.com/oyenscilik/cms-admin/src/session"
)

func authedStore(t *testing.T, token string) *session.MemStore {
	t.Helper()
	s := session.NewMemStore()
	if err := s.SetAuth(models.AdminUser{ID: "usr_1", Name: "Admin"}, token); err != nil {
		t.Fatalf("SetAuth failed: %v", err)
	}
	return s
}

func TestGetAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, authedStore(t, "tok-abc"))

	var out []models.Letter
	if err := client.Get(context.Background(), "/content/letters", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("expected 'Bearer tok-abc', got %q", gotAuth)
	}
}

func TestGetOmitsBearerWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, session.NewMemStore())

	var out []models.Letter
	if err := client.Get(context.Background(), "/content/letters", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestGetDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"letter":"A","letterLower":"a","exampleWord":"Apel","pronunciation":"ah"}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, authedStore(t, "tok"))

	var out []models.Letter
	if err := client.Get(context.Background(), "/content/letters", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(out) != 1 || out[0].Letter != "A" || out[0].ExampleWord != "Apel" {
		t.Errorf("unexpected decode result: %+v", out)
	}
}

func TestGetDecodesBareBody(t *testing.T) {
	// Some endpoints respond without the envelope wrapper
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"letter":"B"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, authedStore(t, "tok"))

	var out models.Letter
	if err := client.Get(context.Background(), "/content/letters/1", &out); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if out.Letter != "B" {
		t.Errorf("expected letter B, got %+v", out)
	}
}

func TestUnauthorizedTearsDownSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	}))
	defer srv.Close()

	store := authedStore(t, "expired-tok")
	client := New(srv.URL, store)

	var out []models.Letter
	err := client.Get(context.Background(), "/content/letters", &out)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("session must be cleared on 401, regardless of caller")
	}
}

func TestClientErrorSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Huruf sudah ada"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, authedStore(t, "tok"))

	err := client.Post(context.Background(), "/admin/content/letters", models.Letter{Letter: "A"}, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if !apiErr.IsClientError() {
		t.Error("400 should report as client error")
	}
	if apiErr.Message != "Huruf sudah ada" {
		t.Errorf("expected server message, got %q", apiErr.Message)
	}
}

func TestServerErrorHasNoClientMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, authedStore(t, "tok"))

	err := client.Get(context.Background(), "/content/letters", &[]models.Letter{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.IsClientError() {
		t.Error("500 must not report as client error")
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.Status)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Any HTTP response counts as reachable, even an error status
		w.WriteHeader(http.StatusNotFound)
	}))

	client := New(srv.URL, session.NewMemStore())
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("expected reachable, got %v", err)
	}

	srv.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Error("expected unreachable after server close")
	}
}
