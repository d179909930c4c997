package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func echo(body string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func serve(r *Router, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/hello", echo("hi"))

	w := serve(r, http.MethodGet, "/hello")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", w.Body.String())
}

func TestNotFound(t *testing.T) {
	r := New()
	r.GET("/hello", echo("hi"))

	w := serve(r, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/hello", echo("hi"))

	w := serve(r, http.MethodPost, "/hello")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestWildcardSegment(t *testing.T) {
	r := New()
	r.GET("/items/*", echo("item"))

	w := serve(r, http.MethodGet, "/items/abc-123")
	assert.Equal(t, "item", w.Body.String())
}

func TestTrailingWildcardMatchesDeepPaths(t *testing.T) {
	r := New()
	r.GET("/swagger/*", echo("docs"))

	w := serve(r, http.MethodGet, "/swagger/index.html")
	assert.Equal(t, "docs", w.Body.String())

	w = serve(r, http.MethodGet, "/swagger/ui/bundle.js")
	assert.Equal(t, "docs", w.Body.String())
}

// The more literal pattern wins when two wildcard routes match.
func TestWildcardSpecificity(t *testing.T) {
	r := New()
	r.GET("/items/*", echo("generic"))
	r.GET("/items/*/snippet", echo("snippet"))

	w := serve(r, http.MethodGet, "/items/abc/snippet")
	assert.Equal(t, "snippet", w.Body.String())

	w = serve(r, http.MethodGet, "/items/abc")
	assert.Equal(t, "generic", w.Body.String())
}

func TestRegisteredRoutesAreTracked(t *testing.T) {
	r := New()
	r.GET("/a", echo("a"))
	r.POST("/a", echo("a"))
	r.DELETE("/b", echo("b"))

	assert.Len(t, r.Routes(), 3)
	assert.True(t, r.Paths()["/a"])
	assert.True(t, r.Paths()["/b"])
}
