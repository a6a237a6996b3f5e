// Command seed_demo pushes the seed file into the CMS, replacing the demo
// and its products.
//
// Usage: seed_demo [token]
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
	"github.com/arabiq/showroomseed/internal/logging"
	"github.com/arabiq/showroomseed/internal/seed"
	"github.com/arabiq/showroomseed/internal/seeder"
)

func main() {
	fmt.Println("🌱 Showroom Demo Seeder")
	fmt.Println("============================================================")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.LogLevel, cfg.AppEnv)

	token := ""
	if len(os.Args) > 1 {
		token = os.Args[1]
	} else {
		token, err = config.LoadSeedToken(cfg.CMS.EnvFile)
		if errors.Is(err, config.ErrNoSeedToken) {
			fmt.Println("❌ No SEED_TOKEN found. Pass it as the first argument or set it in", cfg.CMS.EnvFile)
			os.Exit(1)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("failed to read seed token")
		}
	}

	if err := run(context.Background(), cfg, token, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func run(ctx context.Context, cfg *config.Config, token string, w io.Writer) error {
	data, err := seed.ReadFile(cfg.Paths.SeedFile)
	if err != nil {
		return err
	}
	if report := seed.Validate(data); !report.OK() {
		for _, c := range report.Failed() {
			fmt.Fprintf(w, "❌ %s - %s\n", c.Name, c.Detail)
		}
		return fmt.Errorf("seed file %s failed %d checks", cfg.Paths.SeedFile, len(report.Failed()))
	}

	client, err := cms.New(cfg.CMS.URL, token,
		cms.WithTimeout(cfg.CMS.Timeout),
		cms.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "📦 Seeding %s (%d products) into %s\n", data.Demo.Slug, len(data.Products), cfg.CMS.URL)
	res, err := seeder.New(client, log.Logger).Seed(ctx, data)
	if err != nil {
		return err
	}

	if res.ReplacedDemo {
		fmt.Fprintf(w, "🗑️  Replaced existing demo and %d products\n", res.RemovedProducts)
	}
	fmt.Fprintf(w, "✅ Demo created: %s\n", res.DemoDocumentID)
	fmt.Fprintf(w, "✅ Products created: %d\n", res.Products)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "🌐 Demo:  %s/en/demos/%s\n", cfg.WebURL, data.Demo.Slug)
	fmt.Fprintf(w, "🛠️  Admin: %s/en/demos/%s/admin\n", cfg.WebURL, data.Demo.Slug)
	return nil
}
