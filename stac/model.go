// Package stac assembles STAC 1.0.0 Item and Collection documents for the
// GA DLCD dataset from raster inspection output and the dataset
// configuration, and writes them as JSON files.
package stac

import (
	"fmt"

	"github.com/ausgeo/dlcd-stac/dlcd"
	"github.com/venicegeo/geojson-go/geojson"
)

// Version is the STAC specification version the documents declare
const Version = "1.0.0"

// MediaTypeCOG is the media type of a Cloud-Optimized GeoTIFF asset
const MediaTypeCOG = "image/tiff; application=geotiff; profile=cloud-optimized"

// ProjectionExtensionURI is the STAC projection extension schema
const ProjectionExtensionURI = "https://stac-extensions.github.io/projection/v1.0.0/schema.json"

// Asset is a named reference to a data file within an Item
type Asset struct {
	Href  string   `json:"href"`
	Type  string   `json:"type,omitempty"`
	Title string   `json:"title,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Item is a STAC Item: a GeoJSON feature describing one asset set
type Item struct {
	Type       string                 `json:"type"`
	Version    string                 `json:"stac_version"`
	Extensions []string               `json:"stac_extensions,omitempty"`
	ID         string                 `json:"id"`
	Geometry   interface{}            `json:"geometry"`
	BBox       geojson.BoundingBox    `json:"bbox"`
	Properties map[string]interface{} `json:"properties"`
	Links      []dlcd.Link            `json:"links"`
	Assets     map[string]Asset       `json:"assets"`
	Collection string                 `json:"collection,omitempty"`
}

// PropertyString returns a string property, or "" when absent or not a string
func (item *Item) PropertyString(key string) string {
	if value, ok := item.Properties[key].(string); ok {
		return value
	}
	return ""
}

// SpatialExtent is the set of bounding boxes covered by a Collection
type SpatialExtent struct {
	BBox [][]float64 `json:"bbox"`
}

// TemporalExtent is the set of time intervals covered by a Collection;
// interval endpoints are RFC 3339 strings, nil meaning open-ended
type TemporalExtent struct {
	Interval [][]*string `json:"interval"`
}

// Extent is a Collection's combined spatial and temporal coverage
type Extent struct {
	Spatial  SpatialExtent  `json:"spatial"`
	Temporal TemporalExtent `json:"temporal"`
}

// Collection is a STAC Collection wrapping dataset-level metadata
type Collection struct {
	Type        string           `json:"type"`
	Version     string           `json:"stac_version"`
	ID          string           `json:"id"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description"`
	Keywords    []string         `json:"keywords,omitempty"`
	License     string           `json:"license"`
	Providers   []dlcd.Provider  `json:"providers,omitempty"`
	Extent      Extent           `json:"extent"`
	Links       []dlcd.Link      `json:"links"`
	Assets      map[string]Asset `json:"assets,omitempty"`
}

// MetadataError indicates inputs too incomplete to build STAC metadata from
type MetadataError struct {
	Subject string
	Message string
}

func (err *MetadataError) Error() string {
	return fmt.Sprintf("cannot build metadata for %q: %s", err.Subject, err.Message)
}
