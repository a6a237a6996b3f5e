// Command export_demo prints the demo's EN/AR products side by side and
// saves both raw CMS responses for updating the seed file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/arabiq/showroomseed/internal/cms"
	"github.com/arabiq/showroomseed/internal/config"
	"github.com/arabiq/showroomseed/internal/export"
	"github.com/arabiq/showroomseed/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.AppEnv)

	token, err := config.LoadSeedToken(cfg.CMS.EnvFile)
	if err != nil {
		if errors.Is(err, config.ErrNoSeedToken) {
			fmt.Println("ERROR: No SEED_TOKEN found")
			log.Debug().Err(err).Msg("token lookup failed")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("failed to read seed token")
	}

	if err := run(context.Background(), cfg, token, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}
}

func run(ctx context.Context, cfg *config.Config, token string, w io.Writer) error {
	client, err := cms.New(cfg.CMS.URL, token,
		cms.WithTimeout(cfg.CMS.Timeout),
		cms.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	return export.Run(ctx, client, export.Options{
		Slug:       cfg.Demo.Slug,
		Title:      cfg.Demo.Title,
		PageSize:   cfg.CMS.PageSize,
		OutputPath: cfg.Paths.ExportFile,
	}, w)
}
