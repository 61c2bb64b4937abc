// Package main is the entry point for gloomcast.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"

	"gloomcast/internal/config"
	"gloomcast/internal/game"
	"gloomcast/internal/telemetry"
	"gloomcast/internal/terminal"
	"gloomcast/internal/world"
)

func main() {
	// .env is for local development; variables set directly still apply.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	configPath := os.Getenv("GLOOMCAST_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg := config.MustLoadConfig(configPath)

	ctx := context.Background()

	// Telemetry is opt-in: without an endpoint the exporter would retry
	// against a dead connection for the whole session.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	tracer := telemetry.Tracer("main")
	_, span := tracer.Start(ctx, "assets.load")
	wld, err := world.LoadWorld(cfg.Assets)
	if err != nil {
		span.End()
		log.Fatalf("Failed to load world: %v", err)
	}
	span.SetAttributes(
		attribute.String("map.name", cfg.Assets.Map),
		attribute.Int("map.width", wld.Map.Width()),
		attribute.Int("map.height", wld.Map.Height()),
		attribute.Int("sprites.count", len(wld.Sprites)),
		attribute.Int("textures.wall", len(wld.WallTextures)),
		attribute.Int("textures.sprite", len(wld.SpriteTextures)),
	)
	span.End()

	scr, err := terminal.New(cfg.Display.Color)
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}

	eng := game.New(cfg, scr, wld)
	runErr := eng.Run(ctx)

	// Restore the terminal before reporting anything.
	scr.Close()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}
