package handlers

import (
	"net/http"

	"dentalclinic/internal/http/middleware"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

type createViewRequest struct {
	Screen string `json:"screen" binding:"required"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type filterRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type sortRequest struct {
	Key string `json:"key" binding:"required"`
}

type pageRequest struct {
	Page int `json:"page"`
}

type pageSizeRequest struct {
	PageSize int `json:"page_size"`
}

// respondView writes the session state. A failed fetch still carries the
// state, which keeps the last good page, so clients can render and retry.
func respondView(c *gin.Context, okStatus int, id string, state services.ViewState, err error) {
	if err != nil {
		status, code := domainStatus(err)
		if status != http.StatusServiceUnavailable {
			RespondDomainError(c, err)
			return
		}
		c.JSON(status, gin.H{
			"id":         id,
			"state":      state,
			"error":      err.Error(),
			"code":       code,
			"request_id": middleware.GetRequestID(c),
		})
		return
	}
	c.JSON(okStatus, gin.H{"id": id, "state": state})
}

// CreateView opens a query session on a screen and loads its first page.
func (a *API) CreateView(c *gin.Context) {
	var req createViewRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id, state, err := a.Views.Open(c.Request.Context(), req.Screen, middleware.GetRequestID(c))
	if id == "" {
		RespondDomainError(c, err)
		return
	}
	respondView(c, http.StatusCreated, id, state, err)
}

func (a *API) GetView(c *gin.Context) {
	id := c.Param("id")
	state, err := a.Views.State(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "state": state})
}

func (a *API) DeleteView(c *gin.Context) {
	if err := a.Views.Close(c.Param("id"), middleware.GetRequestID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) SetViewSearch(c *gin.Context) {
	var req searchRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := c.Param("id")
	state, err := a.Views.Search(c.Request.Context(), id, req.Term)
	respondView(c, http.StatusOK, id, state, err)
}

// SetViewFilter sets one filter; an empty value clears it.
func (a *API) SetViewFilter(c *gin.Context) {
	var req filterRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := c.Param("id")
	state, err := a.Views.Filter(c.Request.Context(), id, req.Field, req.Value)
	respondView(c, http.StatusOK, id, state, err)
}

// SetViewSort toggles the order when key is already the sort key.
func (a *API) SetViewSort(c *gin.Context) {
	var req sortRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := c.Param("id")
	state, err := a.Views.Sort(c.Request.Context(), id, req.Key)
	respondView(c, http.StatusOK, id, state, err)
}

func (a *API) SetViewPage(c *gin.Context) {
	var req pageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := c.Param("id")
	state, err := a.Views.Page(c.Request.Context(), id, req.Page)
	respondView(c, http.StatusOK, id, state, err)
}

func (a *API) SetViewPageSize(c *gin.Context) {
	var req pageSizeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	id := c.Param("id")
	state, err := a.Views.PageSize(c.Request.Context(), id, req.PageSize)
	respondView(c, http.StatusOK, id, state, err)
}

func (a *API) RetryView(c *gin.Context) {
	id := c.Param("id")
	state, err := a.Views.Retry(c.Request.Context(), id)
	respondView(c, http.StatusOK, id, state, err)
}
