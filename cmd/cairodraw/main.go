// SPDX-License-Identifier: Unlicense OR MIT

// Command cairodraw renders a TOML scene description to PNG, PDF,
// SVG, PostScript or cairo script output.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gocairo.org/cairo"
)

func main() {
	scenePath := flag.String("scene", "scene.toml", "path to the scene description")
	outPath := flag.String("o", "", "output path, overrides the scene's output.path")
	debug := flag.Bool("debug", false, "log at debug level and trace native handles")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "cairodraw").Logger()
	if !*debug {
		logger = logger.Level(zerolog.InfoLevel)
	}
	log.Logger = logger
	if *debug {
		cairo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *scenePath).Msg("failed to load scene")
	}
	if *outPath != "" {
		scene.Output.Path = *outPath
	}
	if err := resolveFormat(&scene.Output); err != nil {
		log.Fatal().Err(err).Msg("cannot resolve output")
	}
	log.Debug().
		Str("format", string(scene.Output.Format)).
		Float64("width", scene.Page.Width).
		Float64("height", scene.Page.Height).
		Int("shapes", len(scene.Shapes)).
		Msg("scene loaded")

	start := time.Now()
	if err := render(scene); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
	info, err := os.Stat(scene.Output.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("output missing after render")
	}
	log.Info().
		Str("scene", *scenePath).
		Str("output", scene.Output.Path).
		Str("format", string(scene.Output.Format)).
		Int("shapes", len(scene.Shapes)).
		Int64("bytes", info.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("scene rendered")
}
