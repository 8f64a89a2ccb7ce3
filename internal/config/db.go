package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// DSN builds the MySQL DSN for env.
func (e Env) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = e.DBUser
	cfg.Passwd = e.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = e.DBHost
	cfg.DBName = e.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Timeout = 5 * time.Second
	cfg.ReadTimeout = 30 * time.Second
	cfg.WriteTimeout = 30 * time.Second
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// ConnectDB initializes the shared DB connection (idempotent).
func ConnectDB(env Env) (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}

	db, err := sql.Open("mysql", env.DSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	DB = db
	log.Println("Conectado ao banco de dados MySQL")
	return DB, nil
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
