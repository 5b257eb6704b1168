package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env into the process environment. A -port flag wins over the
// PORT variable so several instances can share one env file locally.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP port (overrides PORT from the environment)")
	flag.Parse()

	if portFlag == "" {
		return nil
	}

	if err := os.Setenv("PORT", portFlag); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}

	return nil
}
