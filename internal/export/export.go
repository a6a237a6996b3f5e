package export

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/arabiq/showroomseed/internal/cms"
	"github.com/arabiq/showroomseed/internal/models"
)

// Lister fetches one locale's products for a demo
type Lister interface {
	ListDemoProducts(ctx context.Context, slug, locale string, pageSize int) (*models.ProductPage, error)
}

// Options controls a single export run
type Options struct {
	Slug       string
	Title      string
	PageSize   int
	OutputPath string
}

// Run fetches EN then AR, prints the report to w and saves the raw snapshot.
// The two requests are made one after the other and any failure stops the run.
func Run(ctx context.Context, l Lister, opts Options, w io.Writer) error {
	en, err := l.ListDemoProducts(ctx, opts.Slug, cms.LocaleEN, opts.PageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch EN products: %w", err)
	}
	log.Debug().Str("slug", opts.Slug).Int("count", en.Count()).Msg("fetched EN products")

	ar, err := l.ListDemoProducts(ctx, opts.Slug, cms.LocaleAR, opts.PageSize)
	if err != nil {
		return fmt.Errorf("failed to fetch AR products: %w", err)
	}
	log.Debug().Str("slug", opts.Slug).Int("count", ar.Count()).Msg("fetched AR products")

	if err := WriteReport(w, opts.Title, en, ar); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := WriteSnapshot(opts.OutputPath, en, ar); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Full JSON saved to %s\n", opts.OutputPath)
	return err
}
