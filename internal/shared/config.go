package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	CORSOrigins    []string
	StorageBackend string // mysql|sqlite|mongo
	MySQLDSN       string
	SQLitePath     string
	MongoURI       string
	MongoDB        string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	SeedWorkers    int
	ListingsAPIURL string
	ListingsAPIRPS int
}

// Load reads configuration from the environment, after merging an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", ""),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		CORSOrigins:    splitList(env("CORS_ORIGINS", "*")),
		StorageBackend: env("STORAGE_BACKEND", "mysql"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/realty?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		SQLitePath:     env("SQLITE_PATH", "data/realty.db"),
		MongoURI:       env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        env("MONGO_DB", "realty"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		SeedWorkers:    atoi("SEED_WORKERS", 4),
		ListingsAPIURL: env("LISTINGS_API_URL", "http://localhost:8080"),
		ListingsAPIRPS: atoi("LISTINGS_API_RPS", 5),
	}
	if c.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR is empty; listing cache disabled")
	}
	return c
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
