package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mamisoa/clinic-portal/internal/stubserver"
)

// Development double of the clinic backend. Serves the same endpoints and
// response bodies as the real service from in-memory state, seeded with
// receptionist1/doctor1 (password "password123").
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		log.Println("JWT_SECRET not set, using development default.")
	}

	srv := stubserver.New([]byte(secret))
	if err := srv.SeedDefaults(); err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting stub clinic API on port %s", port)
	if err := srv.Router().Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
