package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env и применяет флаги командной строки поверх окружения.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var port string
	flag.StringVar(&port, "port", "", "server port (overrides PORT environment variable)")
	flag.Parse()

	if port == "" {
		return nil
	}

	if err := os.Setenv("PORT", port); err != nil {
		return fmt.Errorf("failed to set PORT environment variable: %w", err)
	}

	return nil
}
