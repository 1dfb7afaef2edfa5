package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает .env (если он есть) и применяет флаги командной строки.
// Уже выставленные переменные окружения не перезаписываются.
func Load() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var (
		portFlag    string
		migrateFlag bool
	)
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.BoolVar(&migrateFlag, "migrate", false, "Apply database migrations on start")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	if migrateFlag {
		if err := os.Setenv("POSTGRES_MIGRATE_ON_START", "true"); err != nil {
			return fmt.Errorf("failed to set POSTGRES_MIGRATE_ON_START environment variable: %w", err)
		}
	}
	return nil
}
