package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-default:"dev"`
	HTTP     HTTPConfig
	SQLite   SQLiteConfig
	Frontend FrontendConfig
}

// IsProduction reports whether internal error details must be hidden
// from API responses.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProd
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" env-default:"database/tasks.db"`
	// Seed inserts a few sample tasks when the table is empty.
	Seed bool `env:"SQLITE_SEED" env-default:"false"`
}

type FrontendConfig struct {
	Dir string `env:"FRONTEND_DIR" env-default:"frontend"`
}
