// --- config/config.go ---
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process settings, loaded once at startup and passed
// explicitly to the services that need them.
type Config struct {
	Addr      string
	JWTSecret string
	UsersFile string
	TasksFile string
	TokenTTL  time.Duration
}

// Load builds a Config from environment variables, reading an optional
// .env file first (ok if missing in prod).
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:      ":" + getenv("PORT", "3000"),
		JWTSecret: getenv("JWT_SECRET", "secreto"),
		UsersFile: getenv("USERS_FILE", "usuarios.json"),
		TasksFile: getenv("TASKS_FILE", "tareas.json"),
		TokenTTL:  time.Hour,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
