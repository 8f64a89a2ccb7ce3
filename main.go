package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "dentalclinic/internal/config"
	router "dentalclinic/internal/http"
	"dentalclinic/internal/http/handlers"
	"dentalclinic/internal/metrics"
	"dentalclinic/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var (
		db  *sql.DB
		src services.Sources
	)
	switch env.DataSource {
	case intconfig.DataSourceMySQL:
		var err error
		db, err = intconfig.ConnectDB(env)
		if err != nil {
			log.Fatalf("Falha ao conectar ao banco: %v", err)
		}
		defer intconfig.CloseDB()
		src = services.MySQLSources(db)
	default:
		src = services.MemorySources(env.FetchDelay)
	}

	api := handlers.NewAPI(env, src, db, metrics.NewRecorder())
	r := router.NewRouter(api)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go api.Views.Run(ctx)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Servidor em http://localhost%s (fonte de dados: %s)", env.AppAddr, env.DataSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Falha ao iniciar o servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Encerrando o servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Falha no encerramento: %v", err)
	}

	log.Println("Servidor encerrado com segurança.")
}
