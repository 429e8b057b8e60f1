package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr        string        `envconfig:"ADDR" default:":8080"`
	JWTSecret   string        `envconfig:"JWT_SECRET" required:"true"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"1h"`
	CatalogSeed string        `envconfig:"CATALOG_SEED" default:"./books.json"`
}

func Load() *Config {
	// START names the .env file to load (.env-local, .env.docker).
	// Without it the process relies on the ambient environment.
	if envFile := os.Getenv("START"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("Env file %s not found", envFile)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}
