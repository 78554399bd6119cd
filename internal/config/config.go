package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	MongoURI string `envconfig:"MONGO_URI" required:"true"`
	MongoDB  string `envconfig:"MONGO_DB" default:"course_marketplace"`

	// Tokens for the two realms are signed with independent secrets so they
	// are never cross-valid.
	UserJWTSecret  string `envconfig:"USER_JWT_SECRET" required:"true"`
	AdminJWTSecret string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	TokenTTLHours  int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`

	// S3-compatible storage for course images.
	S3URL       string `envconfig:"S3_URL" required:"true"`
	S3Bucket    string `envconfig:"S3_BUCKET" required:"true"`
	S3Region    string `envconfig:"S3_REGION" required:"true"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY" required:"true"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY" required:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
