package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docslink/internal/logfields"
)

// envFiles are read in order; values already in the environment win.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads whichever of envFiles exist. Missing files are not an error.
func loadEnvFiles() {
	present := make([]string, 0, len(envFiles))
	for _, p := range envFiles {
		if _, err := os.Stat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return
	}
	if err := godotenv.Load(present...); err != nil {
		slog.Warn("Failed to load environment file", logfields.Error(err))
		return
	}
	for _, p := range present {
		slog.Debug("Loaded environment variables", logfields.Path(p))
	}
}
