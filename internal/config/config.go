package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             string
	DBPath           string
	BoundaryPath     string // GeoJSON district boundary file
	HubsPath         string // hub seed file (JSON array)
	DestinationsPath string // destination seed file (JSON array)
	RateLimitPerMin  int
}

// Load reads configuration from the environment, with a .env file as an
// optional overlay for local development
func Load() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		Port:             getEnv("PORT", ":8080"),
		DBPath:           getEnv("DB_PATH", "./data/logistics.db"),
		BoundaryPath:     getEnv("BOUNDARY_PATH", "./data/districts.geojson"),
		HubsPath:         getEnv("HUBS_PATH", "./data/hubs.json"),
		DestinationsPath: getEnv("DESTINATIONS_PATH", "./data/destinations.json"),
		RateLimitPerMin:  120,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
