package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process configuration, populated from the environment
// (a .env file is loaded first in main when present).
type Config struct {
	Port        string `env:"PORT, default=3000"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH, default=labkeep.db"`

	// JWTSecret signs session tokens and must be at least 32 bytes.
	JWTSecret string `env:"JWT_SECRET, required"`

	// Optional bootstrap admin, created at startup if absent.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`

	TemplatesGlob string `env:"TEMPLATES_GLOB, default=web/templates/*.html"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
