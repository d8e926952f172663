package config

import (
	"errors"
	"fmt"
	"time"
)

// Storage backend names accepted by storage.backend.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
	S3       S3Config       `mapstructure:"s3"`
	Sweeper  SweeperConfig  `mapstructure:"sweeper"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Storage.File.Path == "" {
			return errors.New("storage.file.path is required")
		}
	case BackendSQLite:
		if c.Storage.SQLite.Path == "" {
			return errors.New("storage.sqlite.path is required")
		}
	case BackendPostgres:
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	case BackendRedis:
		if c.Redis.Addr == "" || c.Redis.Key == "" {
			return errors.New("redis.addr and redis.key are required")
		}
	case BackendS3:
		if c.S3.Bucket == "" || c.S3.Key == "" {
			return errors.New("s3.bucket and s3.key are required")
		}
		if c.S3.AccessKeyID != "" && c.S3.SecretAccessKey == "" {
			return errors.New("s3.secret_access_key is required with s3.access_key_id")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	if c.Sweeper.Enabled && c.Sweeper.Interval <= 0 {
		return errors.New("sweeper.interval must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig selects the durable snapshot backend.
type StorageConfig struct {
	Backend string       `mapstructure:"backend"`
	File    FileConfig   `mapstructure:"file"`
	SQLite  SQLiteConfig `mapstructure:"sqlite"`
}

// FileConfig points at the local JSON document.
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// SQLiteConfig points at the SQLite database file.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// RedisConfig describes the redis connection and document key.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Key      string        `mapstructure:"key"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// S3Config describes the bucket and object holding the document.
type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Key       string `mapstructure:"key"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	PathStyle bool   `mapstructure:"path_style"`
	// Static credentials; when AccessKeyID is empty the default AWS chain is used.
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token"`
}

// SweeperConfig drives the recurring loan expiry sweep.
type SweeperConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Interval     time.Duration `mapstructure:"interval"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	Timeout      time.Duration `mapstructure:"timeout"`
}
