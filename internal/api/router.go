package api

import (
	"go-stat-explorer/internal/api/handler"
	"go-stat-explorer/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-stat-explorer/docs"
)

// NewRouter builds the full route table around one App.
func NewRouter(app *handler.App) *router.Router {
	r := router.New()
	RegisterRoutes(r, app)
	return r
}

func RegisterRoutes(r *router.Router, app *handler.App) {
	// HTML surface
	r.GET("/", app.ExplorePage)
	r.POST("/explore", app.SubmitForm)

	// JSON API
	r.POST("/api/v1/explore", app.Explore)
	r.GET("/api/v1/regions", app.ListRegions)
	r.GET("/api/v1/metrics", app.Metrics)
	r.GET("/api/v1/submissions", app.ListSubmissions)
	// The router prefers the snippet route over the generic one
	r.GET("/api/v1/submissions/*/snippet", app.DownloadSnippet)
	r.GET("/api/v1/submissions/*", app.GetSubmission)
	r.DELETE("/api/v1/submissions/*", app.DeleteSubmission)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
