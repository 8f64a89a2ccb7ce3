package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"dentalclinic/internal/domain"
	"dentalclinic/internal/http/middleware"
	"dentalclinic/internal/query"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "corpo da requisição vazio", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "payload inválido", err)
		return false
	}
	return true
}

// specFromQuery reads search, sort, order, page, per_page and filter[field]
// on top of the screen's default spec.
func specFromQuery(c *gin.Context, scr services.Screen) (query.Spec, error) {
	spec := scr.DefaultSpec()

	if v, ok := c.GetQuery("search"); ok {
		spec = spec.WithSearch(strings.TrimSpace(v))
	}
	for field, value := range c.QueryMap("filter") {
		spec = spec.WithFilter(field, strings.TrimSpace(value))
	}
	if v := strings.TrimSpace(c.Query("sort")); v != "" {
		spec.SortKey = v
		spec.SortOrder = query.Asc
	}
	if v, ok := c.GetQuery("order"); ok {
		order, err := query.ParseOrder(v)
		if err != nil {
			return spec, domain.ValidationError{Field: "order", Msg: "use asc ou desc", Err: err}
		}
		spec.SortOrder = order
	}
	if v, ok := c.GetQuery("per_page"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n > services.MaxPageSize {
			return spec, domain.ValidationError{Field: "per_page", Msg: "deve ser um inteiro entre 1 e 100", Err: err}
		}
		spec = spec.WithPageSize(n)
	}
	if v, ok := c.GetQuery("page"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return spec, domain.ValidationError{Field: "page", Msg: "deve ser um inteiro positivo", Err: err}
		}
		spec = spec.WithPage(n)
	}
	return spec, scr.Validate(spec)
}
