package config

import (
	"fmt"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

type Environment string

const (
	Live Environment = "live"
	Beta             = "beta"
	Dev              = "dev"
)

type CampusQAConfig struct {
	Env      Environment
	LogLevel zerolog.Level
	Postgres PostgresConfig
}

type PostgresConfig struct {
	User     string
	Password string
	Hostname string
	Port     int
	DbName   string
	LogLevel tracelog.LogLevel
	MinConn  int32
	MaxConn  int32
}

func (info PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s", info.User, info.Password, info.Hostname, info.Port, info.DbName)
}
