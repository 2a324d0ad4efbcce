package main

import (
	"context"
	"log"
	"os"

	"scoopdash/internal/backend"
	"scoopdash/internal/config"
	"scoopdash/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)

	if err := seed.Apply(context.Background(), client); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
