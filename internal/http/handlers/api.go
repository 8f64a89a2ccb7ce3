package handlers

import (
	"database/sql"

	intconfig "dentalclinic/internal/config"
	"dentalclinic/internal/controller"
	"dentalclinic/internal/domain/models"
	"dentalclinic/internal/metrics"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

// API carries what the dashboard handlers need.
type API struct {
	Env          intconfig.Env
	Catalog      *services.Catalog
	Views        *services.ViewService
	Metrics      *metrics.Recorder
	Appointments controller.Source[models.Appointment]
	// DB is only set when records come from MySQL.
	DB *sql.DB
}

// NewAPI wires the services over src.
func NewAPI(env intconfig.Env, src services.Sources, db *sql.DB, rec *metrics.Recorder) *API {
	catalog := services.NewCatalog(src, services.CatalogOptions{
		Locale:   env.CollationTag(),
		PageSize: env.DefaultPageSize,
		Metrics:  rec,
	})
	return &API{
		Env:          env,
		Catalog:      catalog,
		Views:        services.NewViewService(catalog, env.ViewTTL, rec),
		Metrics:      rec,
		Appointments: src.Appointments,
		DB:           db,
	}
}

func (a *API) screen(c *gin.Context) (services.Screen, bool) {
	scr, err := a.Catalog.Get(c.Param("screen"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return scr, true
}
