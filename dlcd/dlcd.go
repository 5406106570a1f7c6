// Package dlcd carries the dataset-level facts about the Geoscience
// Australia Dynamic Land Cover Dataset: identifiers, descriptive text,
// providers, the classification legend and the dataset-wide spatial and
// temporal extents. They are exposed as an explicit Config value passed into
// the metadata builders rather than as package globals.
package dlcd

import (
	"fmt"
	"time"
)

// Provider is a named organisation involved in producing or hosting the dataset
type Provider struct {
	Name  string   `json:"name" yaml:"name"`
	Roles []string `json:"roles,omitempty" yaml:"roles"`
	URL   string   `json:"url,omitempty" yaml:"url"`
}

// Link is a titled relation to an external resource
type Link struct {
	Rel   string `json:"rel" yaml:"rel"`
	Href  string `json:"href" yaml:"href"`
	Type  string `json:"type,omitempty" yaml:"type"`
	Title string `json:"title,omitempty" yaml:"title"`
}

// Config is the immutable dataset configuration consumed by the COG
// converter and the STAC builders
type Config struct {
	ID          string `yaml:"id"`
	Version     string `yaml:"version"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	License     string `yaml:"license"`

	LicenseLink  Link   `yaml:"license_link"`
	WMSLink      Link   `yaml:"wms_link"`
	ThumbnailURL string `yaml:"thumbnail_url"`

	Keywords  []string   `yaml:"keywords"`
	Providers []Provider `yaml:"providers"`

	EPSG        int       `yaml:"epsg"`
	BoundingBox []float64 `yaml:"bounding_box"`
	StartYear   int       `yaml:"start_year"`
	EndYear     int       `yaml:"end_year"`

	NoDataValue float64        `yaml:"nodata_value"`
	Legend      map[int]string `yaml:"legend"`
	ColourMap   map[int][4]int `yaml:"colour_map"`

	// DeriveItemDates switches item datetimes from the dataset constant to
	// per-file dates parsed from the DLCD filename convention. Off by
	// default; never inferred from the input.
	DeriveItemDates bool `yaml:"derive_item_dates"`
}

// TemporalExtent returns the dataset's temporal coverage as UTC instants
func (c Config) TemporalExtent() (time.Time, time.Time) {
	start := time.Date(c.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(c.EndYear, time.December, 31, 23, 59, 59, 0, time.UTC)
	return start, end
}

// Validate checks that the configuration is complete enough for the builders
func (c Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("dataset config: missing id")
	}
	if len(c.BoundingBox) != 4 {
		return fmt.Errorf("dataset config: bounding_box must have 4 elements, got %d", len(c.BoundingBox))
	}
	if c.BoundingBox[0] > c.BoundingBox[2] || c.BoundingBox[1] > c.BoundingBox[3] {
		return fmt.Errorf("dataset config: bounding_box is not west,south,east,north ordered")
	}
	if c.StartYear == 0 || c.EndYear == 0 || c.EndYear < c.StartYear {
		return fmt.Errorf("dataset config: invalid temporal range %d-%d", c.StartYear, c.EndYear)
	}
	if c.License == "" {
		return fmt.Errorf("dataset config: missing license")
	}
	return nil
}
