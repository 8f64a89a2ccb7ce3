package handlers

import (
	"net/http"

	"dentalclinic/internal/http/middleware"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

// ListScreens returns the catalog of list screens.
func (a *API) ListScreens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": a.Catalog.Infos()})
}

func (a *API) GetScreen(c *gin.Context) {
	scr, ok := a.screen(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, scr.Info())
}

// ScreenRecords runs a one-off query and returns the resulting page together
// with the spec that was applied after clamping.
func (a *API) ScreenRecords(c *gin.Context) {
	scr, ok := a.screen(c)
	if !ok {
		return
	}
	spec, err := specFromQuery(c, scr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, applied, err := scr.Query(c.Request.Context(), spec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": page.Data,
		"meta": page.Meta,
		"spec": applied,
	})
}

// ExportScreenPDF renders the queried page as a PDF table (inline).
func (a *API) ExportScreenPDF(c *gin.Context) {
	scr, ok := a.screen(c)
	if !ok {
		return
	}
	spec, err := specFromQuery(c, scr)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	table, err := scr.Table(c.Request.Context(), spec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ExportService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.RenderPDF(table)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "export_failed", "falha ao gerar o PDF", nil)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
