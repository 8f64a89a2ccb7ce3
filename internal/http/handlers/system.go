package handlers

import (
	"net/http"
	"sync"

	intconfig "dentalclinic/internal/config"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"message":     "painel da clínica em execução",
		"data_source": a.Env.DataSource,
		"views":       a.Views.Len(),
	})
}

func (a *API) DBCheck(c *gin.Context) {
	if a.Env.DataSource != intconfig.DataSourceMySQL {
		c.JSON(http.StatusOK, gin.H{"message": "fonte de dados em memória", "data_source": a.Env.DataSource})
		return
	}
	db := a.DB
	if db == nil {
		db = intconfig.DB
	}
	if db == nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "banco de dados não conectado", nil)
		return
	}
	var one int
	if err := db.QueryRowContext(c.Request.Context(), "SELECT 1").Scan(&one); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "falha ao consultar o banco: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexão com o banco OK", "data_source": a.Env.DataSource})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router ainda não está pronto"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
