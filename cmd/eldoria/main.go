// Package main is the entry point for the Lost Scroll of Eldoria.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/eldoria/internal/game"
	"github.com/samdwyer/eldoria/internal/telemetry"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 = time-derived); reuse a seed to replay a session")
	pause := flag.Duration("pause", 800*time.Millisecond, "dramatic pause between story beats")
	flag.Parse()

	// Load .env file for local development
	// This makes HONEYCOMB_ELDORIA_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(game.Config{Seed: *seed, Pause: *pause})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers from our API key; the .env file may carry an
	// unexpanded variable reference that doesn't work on its own.
	apiKey := os.Getenv("HONEYCOMB_ELDORIA_API_KEY")
	dataset := os.Getenv("HONEYCOMB_ELDORIA_DATASET")
	if dataset == "" {
		dataset = "eldoria" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
