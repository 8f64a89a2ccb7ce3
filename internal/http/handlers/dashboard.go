package handlers

import (
	"net/http"

	"dentalclinic/internal/http/middleware"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardSummary returns the record count of every screen.
func (a *API) DashboardSummary(c *gin.Context) {
	svc := services.SummaryService{Catalog: a.Catalog, RequestID: middleware.GetRequestID(c)}
	totals, err := svc.Totals(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": totals})
}

// AppointmentSlotCheck reports whether ?dentist=&date=&time= is taken.
func (a *API) AppointmentSlotCheck(c *gin.Context) {
	svc := services.AppointmentService{Source: a.Appointments, RequestID: middleware.GetRequestID(c)}
	res, err := svc.CheckSlot(c.Request.Context(), c.Query("dentist"), c.Query("date"), c.Query("time"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
