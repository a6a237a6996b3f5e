package models

import (
	"encoding/json"
	"strconv"
)

// DefaultCurrency is used when the CMS returns a product without a currency
const DefaultCurrency = "EGP"

// Product mirrors a CMS 'demo-product' entry in a single locale
type Product struct {
	ID              int64            `json:"id"`
	DocumentID      string           `json:"documentId"` // Shared by all locale variants
	Locale          string           `json:"locale,omitempty"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           float64          `json:"price"`
	Currency        string           `json:"currency"`
	Category        string           `json:"category"`
	Brand           string           `json:"brand"`
	SKU             string           `json:"sku"`
	InStock         bool             `json:"inStock"`
	Images          []Media          `json:"images"`
	HotspotPosition *HotspotPosition `json:"hotspotPosition"`
}

// Media is an uploaded file reference. Only the count is used by the report.
type Media struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"documentId,omitempty"`
	Name       string `json:"name,omitempty"`
	URL        string `json:"url,omitempty"`
	Mime       string `json:"mime,omitempty"`
}

// CurrencyOrDefault returns the product currency, falling back to EGP
func (p Product) CurrencyOrDefault() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// FormattedPrice renders the price without trailing zeros (28500, 4199.5)
func (p Product) FormattedPrice() string {
	return strconv.FormatFloat(p.Price, 'f', -1, 64)
}

// ImageCount returns the number of attached images (0 when none were populated)
func (p Product) ImageCount() int {
	return len(p.Images)
}

// Pagination is the CMS list pagination block
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// ListMeta is the 'meta' block of a CMS list response
type ListMeta struct {
	Pagination Pagination `json:"pagination"`
}

// ProductPage is one CMS list response for demo products.
// Raw keeps the body exactly as the CMS sent it.
type ProductPage struct {
	Data []Product       `json:"data"`
	Meta ListMeta        `json:"meta"`
	Raw  json.RawMessage `json:"-"`
}

// Count returns the number of products on the page
func (p *ProductPage) Count() int {
	if p == nil {
		return 0
	}
	return len(p.Data)
}
