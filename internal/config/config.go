package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// placeholderKey is the value shipped in .env.example; treating it as "no
// key" keeps a copy-pasted template from sending garbage credentials upstream.
const placeholderKey = "your_gemini_api_key_here"

// Config holds application configuration, read once at startup.
type Config struct {
	// Server
	Port         string
	FrontendURLs []string

	// AI Provider
	GeminiAPIKey string
	GeminiModel  string
}

// Load loads configuration from environment variables.
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		Port:         getEnv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	// CORS origins for local frontends plus whatever FRONTEND_URL lists.
	config.FrontendURLs = []string{"http://localhost:5173", "http://localhost:3000"}
	for _, u := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			config.FrontendURLs = append(config.FrontendURLs, u)
		}
	}

	if !config.AIEnabled() {
		log.Println("WARNING: GEMINI_API_KEY not set - travel plans will use the deterministic fallback")
	}

	return config
}

// AIEnabled reports whether a usable Gemini key was configured. The decision
// is made once per process; there is no hot-reload.
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != "" && c.GeminiAPIKey != placeholderKey
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
