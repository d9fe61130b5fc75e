package config

import (
	"github.com/maxviazov/paging-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"` // validated by logger.New after defaults
	Postgres PostgresConfig      `mapstructure:"postgres" validate:"-"`
	Storage  StorageConfig       `mapstructure:"storage"`
	Paging   PagingConfig        `mapstructure:"paging"`
}

type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=0"` // seconds
}

// PostgresConfig holds connection and pool tuning parameters.
// Durations are in seconds. Secrets are expected from the environment.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbname"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
	AutoMigrate       bool   `mapstructure:"auto_migrate"`
}

// StorageConfig selects the item repository implementation.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory postgres"`
}

// PagingConfig bounds the page sizes clients may request.
type PagingConfig struct {
	DefaultSize int `mapstructure:"default_size" validate:"min=1,max=255,ltefield=MaxSize"`
	MaxSize     int `mapstructure:"max_size" validate:"min=1,max=255"`
	// MaxEnumeratedPages caps how many page ranges one response may list.
	MaxEnumeratedPages int `mapstructure:"max_enumerated_pages" validate:"min=1,max=1048576"`
}
