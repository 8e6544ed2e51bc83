package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string   `envconfig:"PORT" default:"3000"`
	MongoURI        string   `envconfig:"MONGODB_URI" required:"true"`
	DatabaseName    string   `envconfig:"DB_NAME" default:"lifeDropDB"`
	JWTSecret       string   `envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
	StripeSecretKey string   `envconfig:"STRIPE_SECRET_KEY"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,https://life-drop-6707c.web.app,https://life-drop-6707c.firebaseapp.com"`
}

// Load reads .env if present and processes the environment. A missing
// JWT secret or Mongo URI is a configuration error, never a request-time one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or failed to load it:", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
