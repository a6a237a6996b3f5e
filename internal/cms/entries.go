package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/arabiq/showroomseed/internal/models"
)

// Entry is the part of a CMS document every content type shares
type Entry struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"documentId"`
	Locale     string `json:"locale,omitempty"`
}

type entryEnvelope struct {
	Data *Entry `json:"data"`
}

type entryList struct {
	Data []Entry         `json:"data"`
	Meta models.ListMeta `json:"meta"`
}

const listPageSize = 100

// FindBySlug returns the first entry of apiID whose slug matches, or nil when
// there is none
func (c *Client) FindBySlug(ctx context.Context, apiID, slug, locale string) (*Entry, error) {
	q := url.Values{}
	q.Set("filters[slug][$eq]", slug)
	q.Set("locale", locale)
	q.Set("pagination[limit]", "1")

	entries, err := c.list(ctx, apiID, q)
	if err != nil {
		return nil, err
	}
	if len(entries.Data) == 0 {
		return nil, nil
	}
	return &entries.Data[0], nil
}

// ListByDemoSlug returns every entry of apiID linked to the demo with the
// given slug, walking all pages
func (c *Client) ListByDemoSlug(ctx context.Context, apiID, slug string) ([]Entry, error) {
	var all []Entry
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("filters[demo][slug][$eq]", slug)
		q.Set("locale", LocaleEN)
		q.Set("pagination[page]", strconv.Itoa(page))
		q.Set("pagination[pageSize]", strconv.Itoa(listPageSize))

		entries, err := c.list(ctx, apiID, q)
		if err != nil {
			return nil, err
		}
		all = append(all, entries.Data...)

		if page >= entries.Meta.Pagination.PageCount || len(entries.Data) == 0 {
			return all, nil
		}
	}
}

func (c *Client) list(ctx context.Context, apiID string, q url.Values) (*entryList, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/"+apiID, q, nil)
	if err != nil {
		return nil, err
	}
	var out entryList
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s list: %w", apiID, err)
	}
	return &out, nil
}

// Create publishes a new entry of apiID in the given locale
func (c *Client) Create(ctx context.Context, apiID, locale string, data map[string]interface{}) (*Entry, error) {
	payload := make(map[string]interface{}, len(data)+2)
	for k, v := range data {
		payload[k] = v
	}
	payload["locale"] = locale
	payload["publishedAt"] = time.Now().UTC().Format(time.RFC3339)

	body, err := c.do(ctx, http.MethodPost, "/api/"+apiID, nil, map[string]interface{}{"data": payload})
	if err != nil {
		return nil, err
	}
	return decodeEntry(apiID, body)
}

// Localize creates or updates the locale variant of an existing document
func (c *Client) Localize(ctx context.Context, apiID, documentID, locale string, data map[string]interface{}) (*Entry, error) {
	q := url.Values{}
	q.Set("locale", locale)

	body, err := c.do(ctx, http.MethodPut, "/api/"+apiID+"/"+documentID, q, map[string]interface{}{"data": data})
	if err != nil {
		return nil, err
	}
	return decodeEntry(apiID, body)
}

// Delete removes a document in every locale
func (c *Client) Delete(ctx context.Context, apiID, documentID string) error {
	q := url.Values{}
	q.Set("locale", "all")

	_, err := c.do(ctx, http.MethodDelete, "/api/"+apiID+"/"+documentID, q, nil)
	return err
}

func decodeEntry(apiID string, body []byte) (*Entry, error) {
	var env entryEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse %s entry: %w", apiID, err)
	}
	if env.Data == nil || env.Data.DocumentID == "" {
		return nil, fmt.Errorf("%s response has no documentId", apiID)
	}
	return env.Data, nil
}
