package seed

import "github.com/arabiq/showroomseed/internal/models"

// Catalog returns the Awni Electronics showroom: the demo descriptor and the
// ten appliances placed in the tour. Each call builds a fresh value.
func Catalog() *models.SeedFile {
	return &models.SeedFile{
		Demo: models.SeedDemo{
			Title:             "Awni Electronics",
			TitleAr:           "مؤسسة عوني للأجهزة الكهربائية",
			Slug:              "awni-electronics",
			Summary:           "Browse our home appliances showroom in immersive 3D. Refrigerators, washing machines, ovens, TVs and more from trusted brands.",
			SummaryAr:         "تصفح معرض الأجهزة المنزلية في بيئة ثلاثية الأبعاد. ثلاجات، غسالات، أفران، تلفزيونات والمزيد من العلامات التجارية الموثوقة.",
			MatterportModelID: "6WxfcPSW7KM",
			DemoType:          "ecommerce",
			IsActive:          true,
			BusinessName:      "Awni Electronics",
			BusinessNameAr:    "مؤسسة عوني للأجهزة الكهربائية",
			BusinessPhone:     "+201001234567",
			BusinessEmail:     "info@awni-electronics.com",
			BusinessWhatsapp:  "201001234567",
			EnableVoiceOver:   false,
			EnableLiveChat:    true,
			EnableAIChat:      true,
		},
		Products: []models.SeedProduct{
			{
				Name:            "Tornado Refrigerator 450L No Frost",
				NameAr:          "ثلاجة تورنيدو 450 لتر نوفروست",
				Description:     "Tornado 450 liter No Frost refrigerator with digital display. Energy efficient inverter compressor, multi-airflow cooling system, and antibacterial door seal. Silver finish.",
				DescriptionAr:   "ثلاجة تورنيدو 450 لتر نوفروست مع شاشة ديجيتال. ضاغط انفرتر موفر للطاقة، نظام تبريد متعدد التدفق، وعازل باب مضاد للبكتيريا. لون فضي.",
				Price:           28500,
				Currency:        "EGP",
				Category:        "Refrigerators",
				CategoryAr:      "ثلاجات",
				Brand:           "Tornado",
				SKU:             "TRN-REF-450NF",
				InStock:         true,
				HotspotPosition: placement(-14.801, 3.252, -4.811, vec(0.2975, 0.1115, -0.0369), "sbf3p26gpqzy68z1w3d905tzd", 1),
			},
			{
				Name:            "Sharp Microwave 25L with Grill",
				NameAr:          "ميكروويف شارب 25 لتر مع شواية",
				Description:     "Sharp 25 liter microwave oven with grill function. 900W power, 6 auto-cook menus, defrost by weight, child safety lock. Stainless steel interior.",
				DescriptionAr:   "ميكروويف شارب 25 لتر مع وظيفة الشواية. قدرة 900 واط، 6 قوائم طهي تلقائية، إذابة حسب الوزن، قفل أمان للأطفال. داخلية ستانلس ستيل.",
				Price:           4200,
				Currency:        "EGP",
				Category:        "Microwaves",
				CategoryAr:      "ميكروويف",
				Brand:           "Sharp",
				SKU:             "SHP-MW-25G",
				InStock:         true,
				HotspotPosition: placement(-17.128, 0.156, 0.352, vec(-0.1418, 0.2201, 0.2355), "cnbqqcuas2045e4274gseut5d", 0),
			},
			{
				Name:            "LG Automatic Washing Machine 8KG",
				NameAr:          "غسالة إل جي أوتوماتيك 8 كيلو",
				Description:     "LG 8KG front load washing machine with Steam technology. AI DD motor detects fabric type, TurboWash 360 for faster cleaning, SmartThinQ app control.",
				DescriptionAr:   "غسالة إل جي 8 كيلو تحميل أمامي مع تقنية البخار. محرك AI DD يكتشف نوع القماش، TurboWash 360 لتنظيف أسرع، تحكم عبر تطبيق SmartThinQ.",
				Price:           22000,
				Currency:        "EGP",
				Category:        "Washing Machines",
				CategoryAr:      "غسالات",
				Brand:           "LG",
				SKU:             "LG-WM-8KG-ST",
				InStock:         true,
				HotspotPosition: placement(-22.693, 0.879, -6.238, vec(-0.0093, 0.3968, 0.0425), "bs59m91uyb3gn67x24nqe2fqa", 0),
			},
			{
				Name:            "Toshiba Gas Oven 60cm with Fan",
				NameAr:          "فرن غاز توشيبا 60 سم مع مروحة",
				Description:     "Toshiba 60cm gas oven with electric fan for even heat distribution. 4 burner cooktop with safety valves, double glass door, rotisserie function.",
				DescriptionAr:   "فرن غاز توشيبا 60 سم مع مروحة كهربائية لتوزيع الحرارة بالتساوي. 4 شعلات مع صمامات أمان، باب زجاج مزدوج، وظيفة الشواء الدوار.",
				Price:           12500,
				Currency:        "EGP",
				Category:        "Ovens",
				CategoryAr:      "أفران",
				Brand:           "Toshiba",
				SKU:             "TSB-OVEN-60F",
				InStock:         true,
				HotspotPosition: placement(-10.867, 3.123, 2.084, vec(0.0141, 0.1, -0.2997), "6q5mwsz07dnhcq97xg8bssryd", 1),
			},
			{
				Name:            "Fresh Electric Water Heater 50L",
				NameAr:          "سخان مياه فريش كهربائي 50 لتر",
				Description:     "Fresh 50 liter electric water heater with digital thermostat. Enamel coated tank, magnesium anode protection, thermal cut-off safety. 5 year warranty.",
				DescriptionAr:   "سخان مياه فريش 50 لتر كهربائي مع ترموستات ديجيتال. خزان مطلي بالمينا، حماية أنود ماغنسيوم، قاطع حراري للأمان. ضمان 5 سنوات.",
				Price:           5800,
				Currency:        "EGP",
				Category:        "Water Heaters",
				CategoryAr:      "سخانات",
				Brand:           "Fresh",
				SKU:             "FRS-WH-50L",
				InStock:         true,
				HotspotPosition: placement(-14.384, 0.607, 0.863, vec(-0.2208, 0.1, 0.2027), "gcdwxbgaydqz8fe8g2rwk6bua", 0),
			},
			{
				Name:            "Samsung 55\" 4K Smart TV Crystal UHD",
				NameAr:          "تلفزيون سامسونج 55 بوصة 4K سمارت كريستال UHD",
				Description:     "Samsung 55 inch Crystal UHD 4K Smart TV with Crystal Processor 4K, HDR10+, PurColor technology. Built-in WiFi, multiple HDMI ports, and Tizen OS with streaming apps pre-installed.",
				DescriptionAr:   "تلفزيون سامسونج 55 بوصة كريستال UHD 4K سمارت مع معالج كريستال 4K، HDR10+، تقنية PurColor. واي فاي مدمج، منافذ HDMI متعددة، ونظام Tizen مع تطبيقات البث المثبتة مسبقاً.",
				Price:           18500,
				Currency:        "EGP",
				Category:        "TVs",
				CategoryAr:      "تلفزيونات",
				Brand:           "Samsung",
				SKU:             "SAM-TV-55CU",
				InStock:         true,
				HotspotPosition: placement(-8.472, 2.955, 0.008, vec(0.0142, 0.1184, 0.2991), "p9cuqxqszfkyss62t97xi3y3c", 1),
			},
			{
				Name:            "Midea Split Air Conditioner 1.5HP Cool/Heat",
				NameAr:          "تكييف ميديا سبليت 1.5 حصان بارد/ساخن",
				Description:     "Midea 1.5 HP inverter split air conditioner with cooling and heating. Energy class A++, R32 eco-friendly refrigerant, turbo mode, self-cleaning function, WiFi control via app.",
				DescriptionAr:   "تكييف ميديا 1.5 حصان انفرتر سبليت بارد وساخن. فئة طاقة A++، غاز R32 صديق للبيئة، وضع تيربو، خاصية التنظيف الذاتي، تحكم واي فاي عبر التطبيق.",
				Price:           26000,
				Currency:        "EGP",
				Category:        "Air Conditioners",
				CategoryAr:      "تكييفات",
				Brand:           "Midea",
				SKU:             "MDA-AC-15INV",
				InStock:         true,
				HotspotPosition: placement(-23.572, 0.674, 5.327, vec(0.0006, 0.1, -0.2982), "knnb69r5cnrn6dr2taesuya9c", 0),
			},
			{
				Name:            "Bosch Dishwasher 14 Place Settings",
				NameAr:          "غسالة أطباق بوش 14 فرد",
				Description:     "Bosch freestanding dishwasher with 14 place settings. 6 wash programs including eco mode, AquaStop leak protection, VarioSpeed for faster cycles, stainless steel finish.",
				DescriptionAr:   "غسالة أطباق بوش قائمة بذاتها 14 فرد. 6 برامج غسيل بما في ذلك الوضع الاقتصادي، حماية AquaStop من التسريب، VarioSpeed لدورات أسرع، لون ستانلس ستيل.",
				Price:           19500,
				Currency:        "EGP",
				Category:        "Dishwashers",
				CategoryAr:      "غسالات أطباق",
				Brand:           "Bosch",
				SKU:             "BSH-DW-14PS",
				InStock:         true,
				HotspotPosition: placement(-19.386, 0.373, -5.98, vec(-0.2995, 0.1, 0.0055), "k7u100qhcsr5wzra0ragzd3zb", 0),
			},
			{
				Name:            "Zanussi Chest Freezer 300L",
				NameAr:          "فريزر زانوسي أفقي 300 لتر",
				Description:     "Zanussi 300 liter chest freezer with fast freeze function. Low noise operation, adjustable thermostat, interior light, lock and key security. White finish with basket included.",
				DescriptionAr:   "فريزر زانوسي أفقي 300 لتر مع وظيفة التجميد السريع. تشغيل منخفض الضوضاء، ترموستات قابل للتعديل، إضاءة داخلية، قفل ومفتاح للأمان. لون أبيض مع سلة مرفقة.",
				Price:           14200,
				Currency:        "EGP",
				Category:        "Freezers",
				CategoryAr:      "فريزرات",
				Brand:           "Zanussi",
				SKU:             "ZNS-FZ-300CH",
				InStock:         true,
				HotspotPosition: placement(-9.305, 2.535, -7.517, vec(0.0072, 0.3147, 0.2094), "144uyyhgqba5wfnic2r50rw8d", 1),
			},
			{
				Name:            "Philips Blender 2L 700W with Grinder",
				NameAr:          "خلاط فيليبس 2 لتر 700 واط مع مطحنة",
				Description:     "Philips 2 liter countertop blender with 700W motor. 5 speed settings with pulse, ProBlend crushing technology, includes dry mill for spices and coffee. Dishwasher safe jar.",
				DescriptionAr:   "خلاط فيليبس 2 لتر بمحرك 700 واط. 5 سرعات مع نبض، تقنية ProBlend للطحن، يشمل مطحنة جافة للتوابل والقهوة. إبريق آمن للغسيل في غسالة الأطباق.",
				Price:           2800,
				Currency:        "EGP",
				Category:        "Small Appliances",
				CategoryAr:      "أجهزة صغيرة",
				Brand:           "Philips",
				SKU:             "PHL-BL-2L700",
				InStock:         false,
				HotspotPosition: placement(-11.642, 2.447, -3.353, vec(0.0011, 0.4, 0.003), "af09in3u06hza8zmg8dnid3ud", 1),
			},
		},
	}
}

func placement(x, y, z float64, stem *models.Vector3, sweepID string, floor int) *models.HotspotPosition {
	return &models.HotspotPosition{
		X:              x,
		Y:              y,
		Z:              z,
		StemVector:     stem,
		NearestSweepID: sweepID,
		FloorIndex:     floor,
	}
}

func vec(x, y, z float64) *models.Vector3 {
	return &models.Vector3{X: x, Y: y, Z: z}
}
