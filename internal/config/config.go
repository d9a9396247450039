package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DataDir     string
	JWTSecret   string
	DatabaseURL string
}

// Load reads configuration from environment variables. DATABASE_URL,
// when set, switches persistence from the JSON file store to Postgres.
func Load() Config {
	addr := os.Getenv("SHOPVERSE_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	dataDir := os.Getenv("SHOPVERSE_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "shopverse-secret-key-change-in-production"
	}

	return Config{
		Addr:        addr,
		DataDir:     dataDir,
		JWTSecret:   secret,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
