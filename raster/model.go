// Package raster inspects source rasters: it reads the CRS, geotransform,
// band layout and nodata value of a GeoTIFF and computes its EPSG:4326
// footprint. All reading is delegated to GDAL's gdalinfo tool; this package
// only parses the report.
package raster

import (
	"fmt"

	"github.com/ausgeo/dlcd-stac/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Info is the inspection result for a single raster
type Info struct {
	Path         string
	Driver       string
	Width        int
	Height       int
	EPSG         int
	WKT          string
	GeoTransform [6]float64
	Bands        []Band

	// Footprint and BBox are in EPSG:4326 regardless of the raster's own CRS
	Footprint *geojson.Polygon
	BBox      geojson.BoundingBox
}

// Band describes one raster band
type Band struct {
	Index       int
	Type        string
	ColorInterp string
	NoData      *float64
	HasPalette  bool
}

// Categorical reports whether the raster holds classified (discrete) data
// rather than continuous measurements, judged from the first band: integer
// samples or a colour palette mean categorical
func (i *Info) Categorical() bool {
	if len(i.Bands) == 0 {
		return false
	}
	b := i.Bands[0]
	if b.HasPalette {
		return true
	}
	switch b.Type {
	case "Byte", "Int16", "UInt16", "Int32", "UInt32":
		return true
	}
	return false
}

// Complete reports whether the inspection carries everything the metadata
// builders need: a CRS and a 4-element geographic bounding box
func (i *Info) Complete() bool {
	return i != nil && (i.EPSG != 0 || i.WKT != "") && len(i.BBox) == 4
}

// ReadError indicates an unreadable or non-geospatial source raster
type ReadError struct {
	Path     string
	Message  string
	CausedBy error
}

func (err *ReadError) Error() string {
	if err.CausedBy != nil {
		return fmt.Sprintf("could not read raster %q: %s: %v", err.Path, err.Message, err.CausedBy)
	}
	return fmt.Sprintf("could not read raster %q: %s", err.Path, err.Message)
}

// Context is the context for raster inspection operations
type Context struct {
	GdalinfoBin string
	sessionID   string
}

// AppName returns the application name for logging
func (c *Context) AppName() string {
	return "dlcd-stac"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}
