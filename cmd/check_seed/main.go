// Command check_seed validates the seed file before it is pushed to the CMS.
package main

import (
	"fmt"
	"io"
	"os"

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

	ok, err := run(os.Stdout, cfg.Paths.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("seed check failed")
	}
	if !ok {
		os.Exit(1)
	}
}

func run(w io.Writer, path string) (bool, error) {
	data, err := seed.ReadFile(path)
	if err != nil {
		return false, err
	}
	report := seed.Validate(data)

	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintln(w, "           SEED FILE CHECKLIST             ")
	fmt.Fprintln(w, "═══════════════════════════════════════════")
	fmt.Fprintf(w, "📄 %s\n\n", path)

	passed := 0
	for _, c := range report.Checks {
		if c.Passed {
			passed++
			fmt.Fprintf(w, "✅ %s\n", c.Name)
		} else {
			fmt.Fprintf(w, "❌ %s - %s\n", c.Name, c.Detail)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "✅ Passed: %d\n", passed)
	fmt.Fprintf(w, "❌ Failed: %d\n", len(report.Failed()))

	if !report.OK() {
		fmt.Fprintln(w, "\n🚫 FIX FAILED CHECKS BEFORE SEEDING")
		return false, nil
	}
	fmt.Fprintln(w, "\n🎉 Seed file is ready")
	return true, nil
}
