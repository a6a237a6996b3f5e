package export

import (
	"fmt"
	"io"

	"github.com/arabiq/showroomseed/internal/models"
)

// MissingName is printed when a product has no counterpart in the other locale
const MissingName = "(missing)"

// LocaleIndex maps documentId to the product variant in one locale
type LocaleIndex map[string]models.Product

// IndexByDocumentID builds a lookup of products keyed by documentId.
// When a documentId repeats, the last record wins.
func IndexByDocumentID(products []models.Product) LocaleIndex {
	idx := make(LocaleIndex, len(products))
	for _, p := range products {
		idx[p.DocumentID] = p
	}
	return idx
}

// Name returns the counterpart's name, or "(missing)" when there is none
func (idx LocaleIndex) Name(documentID string) string {
	p, ok := idx[documentID]
	if !ok {
		return MissingName
	}
	return p.Name
}

// WriteReport prints one block per EN product, pairing it with its AR variant
func WriteReport(w io.Writer, title string, en, ar *models.ProductPage) error {
	pw := &printer{w: w}

	pw.printf("=== %s Products (EN: %d, AR: %d) ===\n\n", title, en.Count(), ar.Count())

	var arProducts []models.Product
	if ar != nil {
		arProducts = ar.Data
	}
	arIdx := IndexByDocumentID(arProducts)

	if en != nil {
		for _, p := range en.Data {
			writeProduct(pw, p, arIdx)
		}
	}
	return pw.err
}

func writeProduct(pw *printer, p models.Product, arIdx LocaleIndex) {
	pos := p.HotspotPosition
	placed := pos.IsPlaced()

	pw.printf("ID: %d | DocID: %s\n", p.ID, p.DocumentID)
	pw.printf("  EN: %s\n", p.Name)
	pw.printf("  AR: %s\n", arIdx.Name(p.DocumentID))
	pw.printf("  Price: %s %s | Cat: %s | Brand: %s\n", p.FormattedPrice(), p.CurrencyOrDefault(), p.Category, p.Brand)
	pw.printf("  SKU: %s | InStock: %s\n", p.SKU, boolText(p.InStock))
	pw.printf("  Images: %d | HasPosition: %s\n", p.ImageCount(), boolText(placed))
	if placed {
		pw.printf("  Position: x=%.3f y=%.3f z=%.3f\n", pos.X, pos.Y, pos.Z)
		if pos.NearestSweepID != "" {
			pw.printf("  Sweep: %s\n", pos.NearestSweepID)
		}
	}
	pw.printf("\n")
}

// boolText renders a flag as True or False, matching earlier exports
func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// printer keeps the first write error so the report reads straight through
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
