package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListHackathons(c *ginext.Context)
	GetHackathon(c *ginext.Context)
	CreateHackathon(c *ginext.Context)
	ReconcileHackathons(c *ginext.Context)
	SeedHackathons(c *ginext.Context)
}

// InitRouter mounts the API. metrics may be nil.
func InitRouter(mode string, h Handler, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Hackathons
		api.GET("/hackathons", h.ListHackathons)
		api.GET("/hackathons/:id", h.GetHackathon)
		api.POST("/hackathons", h.CreateHackathon)

		// Admin
		admin := api.Group("/admin/hackathons")
		admin.POST("/reconcile", h.ReconcileHackathons)
		admin.POST("/seed", h.SeedHackathons)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
