package main

import "os"

// Config carries the server settings, read from the environment with
// working defaults.
type Config struct {
	Port       string
	ContentDir string
	OutputDir  string
}

func LoadConfig() Config {
	return Config{
		Port:       envOr("APP_PORT", "8080"),
		ContentDir: envOr("CONTENT_DIR", "content"),
		OutputDir:  envOr("OUTPUT_DIR", "outputs"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
