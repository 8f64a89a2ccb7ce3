package api

import (
	"log"
	stdhttp "net/http"

	h "dentalclinic/internal/http/handlers"
	"dentalclinic/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(a.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	if a.Metrics != nil {
		r.GET("/metrics", gin.WrapH(a.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/db-check", a.DBCheck)
		api.GET("/routes", h.Routes)

		// Screens (stateless queries)
		screens := api.Group("/screens")
		screens.GET("", a.ListScreens)
		screens.GET("/:screen", a.GetScreen)
		screens.GET("/:screen/records", a.ScreenRecords)
		screens.GET("/:screen/export.pdf", a.ExportScreenPDF)

		// View sessions (stateful controllers)
		views := api.Group("/views")
		views.POST("", a.CreateView)
		views.GET("/:id", a.GetView)
		views.DELETE("/:id", a.DeleteView)
		views.PUT("/:id/search", a.SetViewSearch)
		views.PUT("/:id/filters", a.SetViewFilter)
		views.PUT("/:id/sort", a.SetViewSort)
		views.PUT("/:id/page", a.SetViewPage)
		views.PUT("/:id/page-size", a.SetViewPageSize)
		views.POST("/:id/retry", a.RetryView)

		api.GET("/dashboard/summary", a.DashboardSummary)
		api.GET("/appointments/slot-check", a.AppointmentSlotCheck)
	}

	h.SetRouter(r)
	return r
}
