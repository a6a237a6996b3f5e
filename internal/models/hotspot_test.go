package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotspotPosition_IsPlaced(t *testing.T) {
	cases := []struct {
		name string
		pos  *HotspotPosition
		want bool
	}{
		{"nil position", nil, false},
		{"all zero", &HotspotPosition{}, false},
		{"zero with sweep", &HotspotPosition{NearestSweepID: "abc", StemVector: &Vector3{Y: 1}}, false},
		{"only x", &HotspotPosition{X: 0.001}, true},
		{"only y", &HotspotPosition{Y: -0.5}, true},
		{"only z", &HotspotPosition{Z: 3}, true},
		{"all set", &HotspotPosition{X: -14.801, Y: 3.252, Z: -4.811}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pos.IsPlaced())
		})
	}
}

func TestProduct_Defaults(t *testing.T) {
	p := Product{Price: 28500}
	assert.Equal(t, "EGP", p.CurrencyOrDefault())
	assert.Equal(t, "28500", p.FormattedPrice())
	assert.Equal(t, 0, p.ImageCount())

	p.Currency = "USD"
	p.Price = 4199.5
	p.Images = []Media{{ID: 1}, {ID: 2}}
	assert.Equal(t, "USD", p.CurrencyOrDefault())
	assert.Equal(t, "4199.5", p.FormattedPrice())
	assert.Equal(t, 2, p.ImageCount())
}

func TestProductPage_CountNil(t *testing.T) {
	var page *ProductPage
	assert.Equal(t, 0, page.Count())
}
