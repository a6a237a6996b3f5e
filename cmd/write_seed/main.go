// Command write_seed writes the Awni Electronics catalog to the seed file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/arabiq/showroomseed/internal/config"
	"github.com/arabiq/showroomseed/internal/logging"
	"github.com/arabiq/showroomseed/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.AppEnv)

	if err := run(cfg.Paths.SeedFile); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Paths.SeedFile).Msg("failed to write seed file")
	}
	fmt.Printf("Done - wrote %s\n", filepath.Base(cfg.Paths.SeedFile))
}

func run(path string) error {
	data := seed.Catalog()
	if err := seed.WriteFile(path, data); err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("products", len(data.Products)).Msg("seed file written")
	return nil
}
