package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashesSurviveRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flashes := NewFlashes("test-secret")

	// First request queues toasts, as a mutation handler would before its
	// redirect
	w1 := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(w1)
	c1.Request = httptest.NewRequest(http.MethodPost, "/dashboard/letters", nil)
	flashes.Success(c1, "Huruf berhasil ditambahkan")
	flashes.Error(c1, "Gagal memuat data angka")

	cookies := w1.Result().Cookies()
	require.NotEmpty(t, cookies, "queuing a flash must set the cookie")

	// Second request carries the cookie back, as the browser would after the
	// redirect
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/dashboard/letters", nil)
	for _, ck := range cookies {
		c2.Request.AddCookie(ck)
	}

	toasts := flashes.Take(c2)
	require.Len(t, toasts, 2)
	assert.Equal(t, Toast{Kind: "success", Text: "Huruf berhasil ditambahkan"}, toasts[0])
	assert.Equal(t, Toast{Kind: "error", Text: "Gagal memuat data angka"}, toasts[1])
}

func TestFlashesAreConsumedOnTake(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flashes := NewFlashes("test-secret")

	w1 := httptest.NewRecorder()
	c1, _ := gin.CreateTestContext(w1)
	c1.Request = httptest.NewRequest(http.MethodPost, "/x", nil)
	flashes.Success(c1, "sekali saja")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	for _, ck := range w1.Result().Cookies() {
		c2.Request.AddCookie(ck)
	}

	require.Len(t, flashes.Take(c2), 1)

	// The cleared cookie from the Take is what the browser holds next
	w3 := httptest.NewRecorder()
	c3, _ := gin.CreateTestContext(w3)
	c3.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	for _, ck := range w2.Result().Cookies() {
		c3.Request.AddCookie(ck)
	}
	assert.Empty(t, flashes.Take(c3), "a taken toast must not reappear")
}
