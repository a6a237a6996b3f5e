package seeder

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabiq/showroomseed/internal/cms"
	"github.com/arabiq/showroomseed/internal/cms/cmstest"
	"github.com/arabiq/showroomseed/internal/export"
	"github.com/arabiq/showroomseed/internal/models"
	"github.com/arabiq/showroomseed/internal/seed"
)

const token = "seed-token"

func newSeeder(t *testing.T, srv *cmstest.Server) *Seeder {
	t.Helper()
	c, err := cms.New(srv.URL, token)
	require.NoError(t, err)
	return New(c, zerolog.Nop())
}

func TestSeed_ReplacesDemo(t *testing.T) {
	srv := cmstest.New(t, token)
	old := srv.AddDemo("awni-electronics", "Old Awni")
	srv.AddProduct(old, "en", models.Product{Name: "Old fridge"})
	srv.AddProduct(old, "en", models.Product{Name: "Old oven"})
	other := srv.AddDemo("royal-jewel", "Royal Jewel")
	srv.AddProduct(other, "en", models.Product{Name: "Gold Ring"})

	res, err := newSeeder(t, srv).Seed(context.Background(), seed.Catalog())
	require.NoError(t, err)

	assert.Equal(t, 10, res.Products)
	assert.Equal(t, 2, res.RemovedProducts)
	assert.True(t, res.ReplacedDemo)
	assert.NotEqual(t, old, res.DemoDocumentID)

	demos := srv.Entries(cms.Demos, "en")
	require.Len(t, demos, 2)
	assert.Equal(t, "royal-jewel", demos[0]["slug"])
	assert.Equal(t, "Awni Electronics", demos[1]["title"])
	assert.Equal(t, "6WxfcPSW7KM", demos[1]["matterportModelId"])

	arDemos := srv.Entries(cms.Demos, "ar")
	require.Len(t, arDemos, 1)
	assert.Equal(t, "مؤسسة عوني للأجهزة الكهربائية", arDemos[0]["title"])

	en := srv.Entries(cms.DemoProducts, "en")
	ar := srv.Entries(cms.DemoProducts, "ar")
	assert.Len(t, en, 11) // ten seeded plus the other demo's ring
	require.Len(t, ar, 10)
	assert.Equal(t, "ثلاجة تورنيدو 450 لتر نوفروست", ar[0]["name"])
	assert.Equal(t, "TRN-REF-450NF", ar[0]["sku"])
	assert.Equal(t, "ثلاجات", ar[0]["category"])
}

func TestSeed_ThenExport(t *testing.T) {
	srv := cmstest.New(t, token)
	_, err := newSeeder(t, srv).Seed(context.Background(), seed.Catalog())
	require.NoError(t, err)

	c, err := cms.New(srv.URL, token)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = export.Run(context.Background(), c, export.Options{
		Slug:       "awni-electronics",
		Title:      "Awni Electronics",
		PageSize:   50,
		OutputPath: filepath.Join(t.TempDir(), "awni-export.json"),
	}, &buf)
	require.NoError(t, err)

	report := buf.String()
	assert.Contains(t, report, "(EN: 10, AR: 10)")
	assert.NotContains(t, report, "(missing)")
	assert.Equal(t, 10, strings.Count(report, "HasPosition: True"))
	assert.Contains(t, report, "  Position: x=-14.801 y=3.252 z=-4.811\n  Sweep: sbf3p26gpqzy68z1w3d905tzd\n")
	assert.Contains(t, report, "  SKU: PHL-BL-2L700 | InStock: False\n")
}

func TestSeed_Unauthorized(t *testing.T) {
	srv := cmstest.New(t, token)
	c, err := cms.New(srv.URL, "bad-token")
	require.NoError(t, err)

	_, err = New(c, zerolog.Nop()).Seed(context.Background(), seed.Catalog())
	require.Error(t, err)
	assert.ErrorIs(t, err, cms.ErrUnauthorized)
	assert.Len(t, srv.Requests(), 1)
	assert.Empty(t, srv.Entries(cms.Demos, "en"))
}

func TestSeed_NoSlug(t *testing.T) {
	srv := cmstest.New(t, token)
	_, err := newSeeder(t, srv).Seed(context.Background(), &models.SeedFile{})
	assert.Error(t, err)
	assert.Empty(t, srv.Requests())
}
