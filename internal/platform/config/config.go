// Package config reads service settings from flags, environment
// variables and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver        string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration

	ListenAddr      string
	ShutdownTimeout time.Duration

	CacheTTL time.Duration
	LogLevel string
}

// Load parses args (without the program name). envFile is loaded first
// when it exists; variables already set in the process win over it.
func Load(args []string, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	app := kingpin.New("sales-dashboard", "Read-only sales analytics API.")
	app.HelpFlag.Short('h')

	app.Flag("db.driver", "Database driver: postgres or sqlite3.").
		Envar("DB_DRIVER").Default("postgres").EnumVar(&cfg.DBDriver, "postgres", "sqlite3")
	app.Flag("db.dsn", "Connection string, or file path for sqlite3.").
		Envar("POSTGRES_DSN").Required().StringVar(&cfg.DSN)
	app.Flag("db.max-open-conns", "Maximum open connections.").
		Envar("DB_MAX_OPEN_CONNS").Default("20").IntVar(&cfg.MaxOpenConns)
	app.Flag("db.max-idle-conns", "Maximum idle connections.").
		Envar("DB_MAX_IDLE_CONNS").Default("10").IntVar(&cfg.MaxIdleConns)
	app.Flag("db.conn-max-lifetime", "Maximum connection lifetime.").
		Envar("DB_CONN_MAX_LIFETIME").Default("30m").DurationVar(&cfg.ConnMaxLifetime)
	app.Flag("db.query-timeout", "Timeout for the sales table query.").
		Envar("QUERY_TIMEOUT").Default("30s").DurationVar(&cfg.QueryTimeout)

	app.Flag("http.listen-addr", "HTTP listen address.").
		Envar("LISTEN_ADDR").Default(":8080").StringVar(&cfg.ListenAddr)
	app.Flag("http.shutdown-timeout", "Graceful shutdown timeout.").
		Envar("SHUTDOWN_TIMEOUT").Default("5s").DurationVar(&cfg.ShutdownTimeout)

	app.Flag("cache.ttl", "How long a fetched sales table is reused.").
		Envar("CACHE_TTL").Default("10m").DurationVar(&cfg.CacheTTL)
	app.Flag("log.level", "Log level: debug, info, warn, error.").
		Envar("LOG_LEVEL").Default("info").EnumVar(&cfg.LogLevel, "debug", "info", "warn", "error")

	if _, err := app.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.CacheTTL <= 0 {
		return errors.New("cache.ttl must be positive")
	}
	if c.MaxOpenConns < 1 {
		return errors.New("db.max-open-conns must be at least 1")
	}
	return nil
}

// EnvFile is the .env path used by main; ENV_FILE overrides it.
func EnvFile() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}
