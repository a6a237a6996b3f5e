package models

// SeedFile is the on-disk seed document. Field order is the JSON key order.
type SeedFile struct {
	Demo     SeedDemo      `json:"demo"`
	Products []SeedProduct `json:"products"`
}

// SeedDemo describes the showroom demo with its Arabic variants
type SeedDemo struct {
	Title             string `json:"title"`
	TitleAr           string `json:"title_ar"`
	Slug              string `json:"slug"`
	Summary           string `json:"summary"`
	SummaryAr         string `json:"summary_ar"`
	MatterportModelID string `json:"matterportModelId"`
	DemoType          string `json:"demoType"`
	IsActive          bool   `json:"isActive"`
	BusinessName      string `json:"businessName"`
	BusinessNameAr    string `json:"businessName_ar"`
	BusinessPhone     string `json:"businessPhone"`
	BusinessEmail     string `json:"businessEmail"`
	BusinessWhatsapp  string `json:"businessWhatsapp"`
	EnableVoiceOver   bool   `json:"enableVoiceOver"`
	EnableLiveChat    bool   `json:"enableLiveChat"`
	EnableAIChat      bool   `json:"enableAiChat"`
}

// SeedProduct is one catalog entry with both locales inline
type SeedProduct struct {
	Name            string           `json:"name"`
	NameAr          string           `json:"name_ar"`
	Description     string           `json:"description"`
	DescriptionAr   string           `json:"description_ar"`
	Price           float64          `json:"price"`
	Currency        string           `json:"currency"`
	Category        string           `json:"category"`
	CategoryAr      string           `json:"category_ar"`
	Brand           string           `json:"brand"`
	SKU             string           `json:"sku"`
	InStock         bool             `json:"inStock"`
	HotspotPosition *HotspotPosition `json:"hotspotPosition"`
}
