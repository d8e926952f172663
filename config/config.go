// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.file.path", "data.json")
	v.SetDefault("storage.sqlite.path", "ledger.db")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "club_ledger_db")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 4)
	v.SetDefault("postgres.min_conns", 1)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key", "club-ledger:data")
	v.SetDefault("redis.timeout", 2*time.Second)

	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.key", "data.json")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.path_style", false)
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.session_token", "")

	v.SetDefault("sweeper.enabled", true)
	v.SetDefault("sweeper.interval", 24*time.Hour)
	v.SetDefault("sweeper.initial_delay", 10*time.Second)
	v.SetDefault("sweeper.timeout", time.Minute)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"storage.backend",
		"storage.file.path",
		"storage.sqlite.path",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
		"redis.addr",
		"redis.password",
		"redis.db",
		"redis.key",
		"redis.timeout",
		"s3.bucket",
		"s3.key",
		"s3.region",
		"s3.endpoint",
		"s3.path_style",
		"s3.access_key_id",
		"s3.secret_access_key",
		"s3.session_token",
		"sweeper.enabled",
		"sweeper.interval",
		"sweeper.initial_delay",
		"sweeper.timeout",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
