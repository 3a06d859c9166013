// Package confs loads process configuration. Secrets and connection strings
// are parsed once here and injected into the components that need them.
package confs

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"5000"`
	MongoURI    string        `env:"MONGO_URI"`
	DBName      string        `env:"DB_NAME" envDefault:"mytodo"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"devsecret"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore error if no .env

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
