package dlcd

// Default returns the GA DLCD v2.1 dataset configuration as published by
// Geoscience Australia
func Default() Config {
	return Config{
		ID:      "ga-dlcd",
		Version: "2.1",
		Title:   "Geoscience Australia Dynamic Land Cover Change",
		Description: "The Dynamic Land Cover Dataset uses a standard land cover classification " +
			"to show the change in behaviour of land cover across Australia. The DLCD includes " +
			"data for every 250m by 250m area on the ground, for the period 2001 to 2015.",
		License: "CC-BY-4.0",
		LicenseLink: Link{
			Rel:   "license",
			Href:  "https://creativecommons.org/licenses/by/4.0/legalcode",
			Title: "Creative Commons Attribution 4.0 International",
		},
		WMSLink: Link{
			Rel:   "wms",
			Href:  "http://services.eos.ga.gov.au/geoserver/nemo/wms?request=GetCapabilities",
			Title: "GA DLCD WMS",
		},
		ThumbnailURL: "https://www.ga.gov.au/__data/assets/image/0013/16510/ga-logo.jpg",
		Keywords: []string{
			"Australia",
			"DLCD",
			"Geographical maps",
			"Geoscience Australia",
			"Land Cover",
			"MODIS",
			"Southern Hemisphere",
		},
		Providers: []Provider{
			{
				Name:  "Geoscience Australia",
				Roles: []string{"host", "licensor", "processor", "producer"},
				URL:   "http://pid.geoscience.gov.au/dataset/ga/83868",
			},
			{
				Name:  "NASA EOSDIS Land Processes DAAC",
				Roles: []string{"producer"},
				URL:   "https://lpdaac.usgs.gov/products/mod13q1v006/",
			},
		},
		EPSG:        4326,
		BoundingBox: []float64{110.0, -45.004798, 155.009189, -10.0},
		StartYear:   2002,
		EndYear:     2015,
		NoDataValue: 0,
		Legend: map[int]string{
			0:  "No Data",
			2:  "Mines and Quarries",
			3:  "Lakes and dams",
			4:  "Salt lakes",
			5:  "Irrigated cropping",
			6:  "Irrigated pasture",
			7:  "Irrigated sugar",
			8:  "Rain fed cropping",
			9:  "Rain fed pasture",
			10: "Rain fed sugar",
			11: "Wetlands",
			14: "Closed Tussock Grassland",
			15: "Alpine meadows",
			16: "Open Hummock Grassland",
			18: "Open Tussock Grassland",
			19: "Scattered shrubs and grasses",
			24: "Dense Shrubland",
			25: "Open Shrubland",
			31: "Closed Forest",
			32: "Open Forest",
			33: "Open Woodland",
			34: "Woodland",
			35: "Urban Areas",
		},
		ColourMap: map[int][4]int{
			0:  {0, 0, 0, 0},
			1:  {130, 130, 130, 255},
			3:  {0, 70, 173, 255},
			4:  {150, 225, 255, 255},
			5:  {90, 36, 90, 255},
			6:  {166, 38, 170, 255},
			7:  {183, 18, 52, 255},
			8:  {198, 141, 153, 255},
			9:  {226, 194, 199, 255},
			10: {219, 77, 105, 255},
			11: {0, 178, 160, 255},
			14: {255, 121, 0, 255},
			15: {255, 255, 255, 255},
			16: {255, 255, 115, 255},
			18: {255, 169, 82, 255},
			19: {255, 255, 190, 255},
			24: {175, 136, 80, 255},
			25: {193, 168, 117, 255},
			31: {0, 133, 0, 255},
			32: {20, 194, 0, 255},
			33: {214, 255, 138, 255},
			34: {186, 232, 96, 255},
			35: {200, 200, 200, 255},
		},
	}
}
