package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config adalah konfigurasi sisi klien, seluruhnya dari environment.
type Config struct {
	BaseURL     string
	SessionFile string
	HTTPTimeout time.Duration
	Latitude    float64
	Longitude   float64
}

// Load membaca .env (jika ada) lalu environment. File .env yang hilang bukan
// error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:     getEnv("RESTOFOOD_API_URL", "http://localhost:8000/api"),
		SessionFile: os.Getenv("RESTOFOOD_SESSION_FILE"),
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.SessionFile = filepath.Join(home, ".restofood", "session.json")
	}

	if v := os.Getenv("RESTOFOOD_HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	cfg.Latitude = getFloat("RESTOFOOD_LAT", -6.2)
	cfg.Longitude = getFloat("RESTOFOOD_LON", 106.816666)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
