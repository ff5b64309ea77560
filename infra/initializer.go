package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize loads .env into the process environment for local runs.
// Deployed environments set MONGODB_URI, SECRET_KEY, STRIPE_SECRET_KEY and
// PORT directly, so a missing file is not an error.
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, reading configuration from the environment")
	}
}
