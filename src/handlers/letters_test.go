package handlers

import (
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
)

// lettersAPI is a fake content API whose list grows when a create lands.
func lettersAPI(listCalls *int32, created *atomic.Bool) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /content/letters", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(listCalls, 1)
		if created.Load() {
			w.Write([]byte(`{"data":[{"id":1,"letter":"A","letterLower":"a","exampleWord":"Apel","pronunciation":"ah"},{"id":2,"letter":"B","letterLower":"b","exampleWord":"Bola","pronunciation":"beh"}]}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":1,"letter":"A","letterLower":"a","exampleWord":"Apel","pronunciation":"ah"}]}`))
	})
	api.HandleFunc("POST /admin/content/letters", func(w http.ResponseWriter, r *http.Request) {
		created.Store(true)
		w.Write([]byte(`{"data":{"id":2,"letter":"B"}}`))
	})
	api.HandleFunc("PUT /admin/content/letters/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":1,"letter":"A"}}`))
	})
	api.HandleFunc("DELETE /admin/content/letters/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})
	return api
}

func TestLettersShowRendersList(t *testing.T) {
	var listCalls int32
	var created atomic.Bool
	app := newTestApp(t, lettersAPI(&listCalls, &created))

	w := app.get("/dashboard/letters")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assertBodyContains(t, w, "Apel")
	assertBodyContains(t, w, "Admin Utama")
}

func TestLettersShowOpensCreateModal(t *testing.T) {
	var listCalls int32
	var created atomic.Bool
	app := newTestApp(t, lettersAPI(&listCalls, &created))

	w := app.get("/dashboard/letters?modal=create")

	assertBodyContains(t, w, "Tambah Huruf")
	assertBodyContains(t, w, `action="/dashboard/letters"`)
}

func TestLettersShowOpensEditModalPrefilled(t *testing.T) {
	var listCalls int32
	var created atomic.Bool
	app := newTestApp(t, lettersAPI(&listCalls, &created))

	w := app.get("/dashboard/letters?edit=1")

	assertBodyContains(t, w, "Edit Huruf")
	assertBodyContains(t, w, `value="Apel"`)
	assertBodyContains(t, w, `action="/dashboard/letters/1/update"`)
}

func TestLettersCreateInvalidatesCacheAndRedirects(t *testing.T) {
	var listCalls int32
	var created atomic.Bool
	app := newTestApp(t, lettersAPI(&listCalls, &created))

	// Warm the cache
	app.get("/dashboard/letters")
	if atomic.LoadInt32(&listCalls) != 1 {
		t.Fatalf("expected 1 list fetch after warm-up, got %d", listCalls)
	}

	w := app.postForm("/dashboard/letters", url.Values{
		"letter":        {"b"},
		"letterLower":   {"B"},
		"exampleWord":   {"Bola"},
		"pronunciation": {"beh"},
	})
	assertRedirect(t, w, "/dashboard/letters")

	// The read after the mutation must refetch and show the new record
	w = app.get("/dashboard/letters")
	if atomic.LoadInt32(&listCalls) != 2 {
		t.Errorf("expected a refetch after create, got %d list fetches", listCalls)
	}
	assertBodyContains(t, w, "Bola")
}

func TestLettersCreateFailureKeepsEnteredValues(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("GET /content/letters", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	api.HandleFunc("POST /admin/content/letters", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Huruf sudah ada"}`))
	})
	app := newTestApp(t, api)

	w := app.postForm("/dashboard/letters", url.Values{
		"letter":        {"c"},
		"letterLower":   {"C"},
		"exampleWord":   {"Cacing"},
		"pronunciation": {"ceh"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected re-rendered screen, got %d", w.Code)
	}
	// Modal stays open with the server's message and the typed values,
	// normalized the way the form normalizes them
	assertBodyContains(t, w, "Huruf sudah ada")
	assertBodyContains(t, w, `value="C"`)
	assertBodyContains(t, w, `value="Cacing"`)
}

func TestLettersDeleteRequiresConfirmation(t *testing.T) {
	deleted := false
	api := http.NewServeMux()
	api.HandleFunc("DELETE /admin/content/letters/1", func(w http.ResponseWriter, r *http.Request) {
		deleted = true
		w.Write([]byte(`{"data":null}`))
	})
	app := newTestApp(t, api)

	w := app.postForm("/dashboard/letters/1/delete", url.Values{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without confirmation, got %d", w.Code)
	}
	if deleted {
		t.Error("unconfirmed delete must never reach the API")
	}
}

func TestLettersDeleteWithConfirmation(t *testing.T) {
	var listCalls int32
	var created atomic.Bool
	app := newTestApp(t, lettersAPI(&listCalls, &created))

	w := app.postForm("/dashboard/letters/1/delete", url.Values{"confirmed": {"true"}})

	assertRedirect(t, w, "/dashboard/letters")
}

func TestLettersUnauthorizedRedirectsToLogin(t *testing.T) {
	api := http.NewServeMux()
	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthorized"}`))
	})
	app := newTestApp(t, api)

	w := app.get("/dashboard/letters")

	assertRedirect(t, w, "/login")
	if app.sessions.IsAuthenticated() {
		t.Error("session must be torn down on 401")
	}
}
