package seed

import (
	"fmt"

	"github.com/arabiq/showroomseed/internal/models"
)

// ExpectedProducts is the number of products the showroom is laid out for
const ExpectedProducts = 10

// Check is a single validation outcome
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Report collects the checks run against a seed document
type Report struct {
	Checks []Check
}

// OK reports whether every check passed
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Failed returns the failing checks in order
func (r *Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

func (r *Report) add(name string, passed bool, detail string) {
	r.Checks = append(r.Checks, Check{Name: name, Passed: passed, Detail: detail})
}

// Validate checks a seed document before it is pushed to the CMS
func Validate(data *models.SeedFile) *Report {
	r := &Report{}
	if data == nil {
		r.add("seed document", false, "empty document")
		return r
	}

	r.add("demo slug", data.Demo.Slug != "", data.Demo.Slug)
	r.add("demo title", data.Demo.Title != "" && data.Demo.TitleAr != "", "EN and AR titles")
	r.add("product count", len(data.Products) == ExpectedProducts,
		fmt.Sprintf("%d products, want %d", len(data.Products), ExpectedProducts))

	seen := make(map[string]int, len(data.Products))
	for i, p := range data.Products {
		label := fmt.Sprintf("product[%d] %s", i, p.SKU)

		var missing []string
		if p.Name == "" {
			missing = append(missing, "name")
		}
		if p.NameAr == "" {
			missing = append(missing, "name_ar")
		}
		if p.SKU == "" {
			missing = append(missing, "sku")
		}
		r.add(label+" text", len(missing) == 0, fmt.Sprintf("missing %v", missing))

		hp := p.HotspotPosition
		switch {
		case hp == nil:
			r.add(label+" hotspot", false, "no hotspotPosition")
		case hp.StemVector == nil || hp.NearestSweepID == "":
			r.add(label+" hotspot", false, "hotspotPosition needs stemVector and nearestSweepId")
		default:
			r.add(label+" hotspot", true, hp.NearestSweepID)
		}

		if p.SKU != "" {
			if prev, dup := seen[p.SKU]; dup {
				r.add(label+" sku unique", false, fmt.Sprintf("duplicate of product[%d]", prev))
			}
			seen[p.SKU] = i
		}
	}
	return r
}
