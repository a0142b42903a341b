// Package config loads process configuration from the environment.
// Missing signing secrets are a fatal startup condition.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":3000"`
	// DB
	SQLiteDSN string `envconfig:"SQLITE_DSN" default:"file:logit-gym.db?cache=shared"`
	// Tokens
	JWTAccessSecret  string        `envconfig:"JWT_ACCESS_SECRET" required:"true"`
	JWTRefreshSecret string        `envconfig:"JWT_REFRESH_SECRET" required:"true"`
	AccessTokenTTL   time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL  time.Duration `envconfig:"REFRESH_TOKEN_TTL" default:"720h"`
	// Passwords
	BcryptCost int `envconfig:"BCRYPT_COST" default:"12"`
	// Users
	DeterministicUserIDs bool `envconfig:"DETERMINISTIC_USER_IDS" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
