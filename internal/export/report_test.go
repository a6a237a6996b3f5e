package export

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabiq/showroomseed/internal/models"
)

func cannedPages() (*models.ProductPage, *models.ProductPage) {
	en := &models.ProductPage{Data: []models.Product{
		{
			ID: 12, DocumentID: "doc-fridge", Name: "Tornado Refrigerator 450L No Frost",
			Price: 28500, Currency: "EGP", Category: "Refrigerators", Brand: "Tornado",
			SKU: "TRN-REF-450NF", InStock: true,
			Images: []models.Media{{ID: 1}, {ID: 2}},
			HotspotPosition: &models.HotspotPosition{
				X: -14.801, Y: 3.252, Z: -4.811, NearestSweepID: "sbf3p26gpqzy68z1w3d905tzd", FloorIndex: 1,
			},
		},
		{
			ID: 14, DocumentID: "doc-blender", Name: "Philips Blender 2L 700W with Grinder",
			Price: 2800.5, Category: "Small Appliances", Brand: "Philips", SKU: "PHL-BL-2L700",
			HotspotPosition: &models.HotspotPosition{},
		},
		{
			ID: 16, DocumentID: "doc-tv", Name: "Samsung 55\" 4K Smart TV Crystal UHD",
			Price: 18500, Currency: "EGP", Category: "TVs", Brand: "Samsung", SKU: "SAM-TV-55CU", InStock: true,
			HotspotPosition: &models.HotspotPosition{X: 0.001},
		},
	}}
	ar := &models.ProductPage{Data: []models.Product{
		{ID: 13, DocumentID: "doc-fridge", Name: "ثلاجة تورنيدو 450 لتر نوفروست"},
		{ID: 17, DocumentID: "doc-tv", Name: "تلفزيون سامسونج 55 بوصة"},
		{ID: 21, DocumentID: "doc-orphan", Name: "منتج بدون مقابل"},
	}}
	return en, ar
}

func TestLocaleIndex_Name(t *testing.T) {
	en, ar := cannedPages()
	idx := IndexByDocumentID(ar.Data)

	assert.Equal(t, "ثلاجة تورنيدو 450 لتر نوفروست", idx.Name(en.Data[0].DocumentID))
	assert.Equal(t, "(missing)", idx.Name(en.Data[1].DocumentID))
	assert.Equal(t, "تلفزيون سامسونج 55 بوصة", idx.Name("doc-tv"))
	assert.Len(t, idx, 3)
}

func TestWriteReport(t *testing.T) {
	en, ar := cannedPages()
	var buf bytes.Buffer

	require.NoError(t, WriteReport(&buf, "Awni Electronics", en, ar))

	want := `=== Awni Electronics Products (EN: 3, AR: 3) ===

ID: 12 | DocID: doc-fridge
  EN: Tornado Refrigerator 450L No Frost
  AR: ثلاجة تورنيدو 450 لتر نوفروست
  Price: 28500 EGP | Cat: Refrigerators | Brand: Tornado
  SKU: TRN-REF-450NF | InStock: True
  Images: 2 | HasPosition: True
  Position: x=-14.801 y=3.252 z=-4.811
  Sweep: sbf3p26gpqzy68z1w3d905tzd

ID: 14 | DocID: doc-blender
  EN: Philips Blender 2L 700W with Grinder
  AR: (missing)
  Price: 2800.5 EGP | Cat: Small Appliances | Brand: Philips
  SKU: PHL-BL-2L700 | InStock: False
  Images: 0 | HasPosition: False

ID: 16 | DocID: doc-tv
  EN: Samsung 55" 4K Smart TV Crystal UHD
  AR: تلفزيون سامسونج 55 بوصة
  Price: 18500 EGP | Cat: TVs | Brand: Samsung
  SKU: SAM-TV-55CU | InStock: True
  Images: 0 | HasPosition: True
  Position: x=0.001 y=0.000 z=0.000

`
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_EmptyPages(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "Awni Electronics", &models.ProductPage{}, nil))
	assert.Equal(t, "=== Awni Electronics Products (EN: 0, AR: 0) ===\n\n", buf.String())
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriteReport_WriteError(t *testing.T) {
	en, ar := cannedPages()
	fw := &failingWriter{}

	err := WriteReport(fw, "Awni Electronics", en, ar)
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, fw.n)
}
