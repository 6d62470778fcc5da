package config

import (
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is populated from the environment on startup. A .env file in the
// working directory is applied first, if present.
var Config CampusQAConfig

func init() {
	godotenv.Load()

	Config = CampusQAConfig{
		Env:      Environment(envOr("CAMPUSQA_ENV", string(Dev))),
		LogLevel: zerologLevel(envOr("CAMPUSQA_LOG_LEVEL", "info")),
		Postgres: PostgresConfig{
			User:     envOr("CAMPUSQA_DB_USER", "campusqa"),
			Password: envOr("CAMPUSQA_DB_PASSWORD", "password"),
			Hostname: envOr("CAMPUSQA_DB_HOST", "localhost"),
			Port:     envInt("CAMPUSQA_DB_PORT", 5432),
			DbName:   envOr("CAMPUSQA_DB_NAME", "campusqa"),
			LogLevel: tracelog.LogLevelDebug,
			MinConn:  int32(envInt("CAMPUSQA_DB_MIN_CONN", 2)),
			MaxConn:  int32(envInt("CAMPUSQA_DB_MAX_CONN", 8)),
		},
	}
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func zerologLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
