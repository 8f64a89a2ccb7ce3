package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type Env struct {
	AppAddr         string
	GinMode         string
	DataSource      string
	DBUser          string
	DBPassword      string
	DBHost          string
	DBName          string
	FetchDelay      time.Duration
	DefaultPageSize int
	Locale          string
	ViewTTL         time.Duration
	CORSOrigins     []string
}

const (
	DataSourceMemory = "memory"
	DataSourceMySQL  = "mysql"
)

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	source := strings.ToLower(strings.TrimSpace(os.Getenv("DATA_SOURCE")))
	if source != DataSourceMySQL {
		source = DataSourceMemory
	}

	return Env{
		AppAddr:         appAddr,
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DataSource:      source,
		DBUser:          envOr("DB_USER", "root"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:          envOr("DB_NAME", "clinica_odonto"),
		FetchDelay:      time.Duration(envInt("FETCH_DELAY_MS", 300)) * time.Millisecond,
		DefaultPageSize: envInt("DEFAULT_PAGE_SIZE", 15),
		Locale:          envOr("COLLATION_LOCALE", "pt-BR"),
		ViewTTL:         time.Duration(envInt("VIEW_TTL_MINUTES", 30)) * time.Minute,
		CORSOrigins:     splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// envInt reads a non-negative integer; invalid values fall back with a warning.
func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("warning: %s=%q inválido, usando %d", key, raw, fallback)
		return fallback
	}
	return n
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CollationTag parses Locale as a BCP 47 tag. Invalid tags yield
// language.Und, which the query engine replaces with its default.
func (e Env) CollationTag() language.Tag {
	tag, err := language.Parse(e.Locale)
	if err != nil {
		log.Printf("warning: COLLATION_LOCALE=%q inválido: %v", e.Locale, err)
		return language.Und
	}
	return tag
}
