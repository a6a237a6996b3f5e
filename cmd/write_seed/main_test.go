package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_WritesSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed", "awni-electronics.json")

	if err := run(path); err != nil {
		t.Fatalf("Failed to write seed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read seed: %v", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		t.Fatalf("Seed is not valid JSON: %v", err)
	}
	if len(top) != 2 || top["demo"] == nil || top["products"] == nil {
		t.Fatalf("Unexpected top-level keys: %v", keys(top))
	}

	var doc struct {
		Demo struct {
			Slug string `json:"slug"`
		} `json:"demo"`
		Products []struct {
			SKU string `json:"sku"`
		} `json:"products"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Failed to decode seed: %v", err)
	}
	if doc.Demo.Slug != "awni-electronics" {
		t.Errorf("demo.slug = %q, want awni-electronics", doc.Demo.Slug)
	}
	if len(doc.Products) != 10 {
		t.Fatalf("got %d products, want 10", len(doc.Products))
	}
	if doc.Products[0].SKU != "TRN-REF-450NF" {
		t.Errorf("products[0].sku = %q, want TRN-REF-450NF", doc.Products[0].SKU)
	}
	if raw[len(raw)-1] != '\n' {
		t.Error("Seed file should end with a newline")
	}
}

func TestRun_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awni-electronics.json")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(path); err != nil {
		t.Fatalf("Failed to write seed: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if !json.Valid(raw) {
		t.Error("Stale content was not replaced")
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
