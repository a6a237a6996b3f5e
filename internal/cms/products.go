package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/arabiq/showroomseed/internal/models"
)

// Content type API ids
const (
	Demos        = "demos"
	DemoProducts = "demo-products"
)

// Locales served by the showroom
const (
	LocaleEN = "en"
	LocaleAR = "ar"
)

// ListDemoProducts fetches one page of a demo's products in the given locale,
// with images populated
func (c *Client) ListDemoProducts(ctx context.Context, slug, locale string, pageSize int) (*models.ProductPage, error) {
	q := url.Values{}
	q.Set("filters[demo][slug][$eq]", slug)
	q.Set("locale", locale)
	q.Set("populate", "images")
	q.Set("pagination[pageSize]", strconv.Itoa(pageSize))

	body, err := c.do(ctx, http.MethodGet, "/api/"+DemoProducts, q, nil)
	if err != nil {
		return nil, err
	}

	var page models.ProductPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse %s products (%s): %w", slug, locale, err)
	}
	page.Raw = json.RawMessage(body)
	return &page, nil
}
