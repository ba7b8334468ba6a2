package main

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/christopherburke/radecparse/targets"
)

// Config holds the settings that can come from the environment or a .env
// file. Command line flags override them.
type Config struct {
	LogLevel string
	Output   string
}

func loadConfig() Config {
	// A missing .env is normal; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Could not read .env file")
	}

	return Config{
		LogLevel: getEnv("RADECPARSE_LOG_LEVEL", "info"),
		Output:   getEnv("RADECPARSE_OUTPUT", string(targets.FormatText)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
