package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/scoutconnect-dev/scoutconnect/db"
	"github.com/scoutconnect-dev/scoutconnect/internal/auth"
	"github.com/scoutconnect-dev/scoutconnect/internal/config"
	"github.com/scoutconnect-dev/scoutconnect/internal/router"
	"github.com/scoutconnect-dev/scoutconnect/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	r := router.New(router.Deps{
		Store:          store.New(conn),
		Tokens:         tokens,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
