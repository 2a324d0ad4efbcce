package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"scoopdash/internal/backend"
	"scoopdash/internal/config"
	"scoopdash/internal/importer"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to menu CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	client := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout)
	imp := importer.NewCSVImporter(f, client)

	start := time.Now()
	count, err := imp.Run(context.Background())
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
