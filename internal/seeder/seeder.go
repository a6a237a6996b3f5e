package seeder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arabiq/showroomseed/internal/cms"
	"github.com/arabiq/showroomseed/internal/models"
)

// CMS is the subset of the content API the seeder needs
type CMS interface {
	FindBySlug(ctx context.Context, apiID, slug, locale string) (*cms.Entry, error)
	ListByDemoSlug(ctx context.Context, apiID, slug string) ([]cms.Entry, error)
	Create(ctx context.Context, apiID, locale string, data map[string]interface{}) (*cms.Entry, error)
	Localize(ctx context.Context, apiID, documentID, locale string, data map[string]interface{}) (*cms.Entry, error)
	Delete(ctx context.Context, apiID, documentID string) error
}

// Result summarizes a seeding run
type Result struct {
	DemoDocumentID  string
	Products        int
	RemovedProducts int
	ReplacedDemo    bool
}

// Seeder pushes a seed document into the CMS
type Seeder struct {
	cms CMS
	log zerolog.Logger
}

// New creates a Seeder
func New(c CMS, log zerolog.Logger) *Seeder {
	return &Seeder{cms: c, log: log}
}

// Seed replaces the demo named by data.Demo.Slug with the seed contents.
// Steps run one at a time and the first failure aborts the run.
func (s *Seeder) Seed(ctx context.Context, data *models.SeedFile) (*Result, error) {
	if data == nil || data.Demo.Slug == "" {
		return nil, fmt.Errorf("seed document has no demo slug")
	}
	slug := data.Demo.Slug
	res := &Result{}

	// 0. Clear what is already there
	removed, err := s.clearProducts(ctx, slug)
	if err != nil {
		return nil, err
	}
	res.RemovedProducts = removed

	existing, err := s.cms.FindBySlug(ctx, cms.Demos, slug, cms.LocaleEN)
	if err != nil {
		return nil, fmt.Errorf("failed to look up demo %s: %w", slug, err)
	}
	if existing != nil {
		if err := s.cms.Delete(ctx, cms.Demos, existing.DocumentID); err != nil {
			return nil, fmt.Errorf("failed to delete demo %s: %w", slug, err)
		}
		res.ReplacedDemo = true
		s.log.Info().Str("slug", slug).Str("documentId", existing.DocumentID).Msg("removed existing demo")
	}

	// 1. Demo entry, then its Arabic variant
	demo, err := s.cms.Create(ctx, cms.Demos, cms.LocaleEN, demoFields(data.Demo))
	if err != nil {
		return nil, fmt.Errorf("failed to create demo %s: %w", slug, err)
	}
	res.DemoDocumentID = demo.DocumentID
	s.log.Info().Int64("id", demo.ID).Str("documentId", demo.DocumentID).Msg("demo created")

	if _, err := s.cms.Localize(ctx, cms.Demos, demo.DocumentID, cms.LocaleAR, demoFieldsAr(data.Demo)); err != nil {
		return nil, fmt.Errorf("failed to localize demo %s: %w", slug, err)
	}

	// 2. Products, each followed by its Arabic variant
	for i, p := range data.Products {
		created, err := s.cms.Create(ctx, cms.DemoProducts, cms.LocaleEN, productFields(p, demo.DocumentID))
		if err != nil {
			return res, fmt.Errorf("failed to create product %d (%s): %w", i, p.SKU, err)
		}
		if _, err := s.cms.Localize(ctx, cms.DemoProducts, created.DocumentID, cms.LocaleAR, productFieldsAr(p)); err != nil {
			return res, fmt.Errorf("failed to localize product %d (%s): %w", i, p.SKU, err)
		}
		res.Products++
		s.log.Info().Str("sku", p.SKU).Str("documentId", created.DocumentID).Msg(p.Name)
	}

	return res, nil
}

func (s *Seeder) clearProducts(ctx context.Context, slug string) (int, error) {
	entries, err := s.cms.ListByDemoSlug(ctx, cms.DemoProducts, slug)
	if err != nil {
		return 0, fmt.Errorf("failed to list products of %s: %w", slug, err)
	}
	for _, e := range entries {
		if err := s.cms.Delete(ctx, cms.DemoProducts, e.DocumentID); err != nil {
			return 0, fmt.Errorf("failed to delete product %s: %w", e.DocumentID, err)
		}
	}
	if len(entries) > 0 {
		s.log.Info().Int("count", len(entries)).Str("slug", slug).Msg("removed existing products")
	}
	return len(entries), nil
}

func demoFields(d models.SeedDemo) map[string]interface{} {
	return map[string]interface{}{
		"title":             d.Title,
		"slug":              d.Slug,
		"summary":           d.Summary,
		"matterportModelId": d.MatterportModelID,
		"demoType":          d.DemoType,
		"isActive":          d.IsActive,
		"businessName":      d.BusinessName,
		"businessPhone":     d.BusinessPhone,
		"businessEmail":     d.BusinessEmail,
		"businessWhatsapp":  d.BusinessWhatsapp,
		"enableVoiceOver":   d.EnableVoiceOver,
		"enableLiveChat":    d.EnableLiveChat,
		"enableAiChat":      d.EnableAIChat,
	}
}

func demoFieldsAr(d models.SeedDemo) map[string]interface{} {
	return map[string]interface{}{
		"title":        d.TitleAr,
		"slug":         d.Slug,
		"summary":      d.SummaryAr,
		"businessName": d.BusinessNameAr,
	}
}

func productFields(p models.SeedProduct, demoDocumentID string) map[string]interface{} {
	fields := map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"currency":    p.Currency,
		"category":    p.Category,
		"brand":       p.Brand,
		"sku":         p.SKU,
		"inStock":     p.InStock,
		"demo":        demoDocumentID,
	}
	if p.HotspotPosition != nil {
		fields["hotspotPosition"] = p.HotspotPosition
	}
	return fields
}

func productFieldsAr(p models.SeedProduct) map[string]interface{} {
	return map[string]interface{}{
		"name":        p.NameAr,
		"description": p.DescriptionAr,
		"category":    p.CategoryAr,
	}
}
