package raster

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"

	"github.com/venicegeo/geojson-go/geojson"
)

// gdalinfoReport mirrors the parts of the `gdalinfo -json` output this
// package consumes
type gdalinfoReport struct {
	DriverShortName  string    `json:"driverShortName"`
	Size             []int     `json:"size"`
	GeoTransform     []float64 `json:"geoTransform"`
	CoordinateSystem struct {
		WKT string `json:"wkt"`
	} `json:"coordinateSystem"`
	CornerCoordinates map[string][]float64 `json:"cornerCoordinates"`
	WGS84Extent       *struct {
		Type        string        `json:"type"`
		Coordinates [][][]float64 `json:"coordinates"`
	} `json:"wgs84Extent"`
	Bands []struct {
		Band                int      `json:"band"`
		Type                string   `json:"type"`
		ColorInterpretation string   `json:"colorInterpretation"`
		NoDataValue         *float64 `json:"noDataValue"`
		ColorTable          *struct {
			Count int `json:"count"`
		} `json:"colorTable"`
	} `json:"bands"`
}

// Both WKT1 (AUTHORITY["EPSG","4326"]) and WKT2 (ID["EPSG",4326]) spellings
var wkt1AuthorityRE = regexp.MustCompile(`AUTHORITY\["EPSG","(\d+)"\]`)
var wkt2IDRE = regexp.MustCompile(`ID\["EPSG",(\d+)\]`)

func epsgFromWKT(wkt string) int {
	// The last match belongs to the whole CRS rather than a sub-node
	if matches := wkt1AuthorityRE.FindAllStringSubmatch(wkt, -1); len(matches) > 0 {
		code, _ := strconv.Atoi(matches[len(matches)-1][1])
		return code
	}
	if matches := wkt2IDRE.FindAllStringSubmatch(wkt, -1); len(matches) > 0 {
		code, _ := strconv.Atoi(matches[len(matches)-1][1])
		return code
	}
	return 0
}

// parseGdalinfo converts a raw `gdalinfo -json` report into an Info,
// validating that the raster actually carries geospatial metadata
func parseGdalinfo(path string, body []byte) (*Info, error) {
	var report gdalinfoReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, &ReadError{Path: path, Message: "gdalinfo report is not valid JSON", CausedBy: err}
	}

	if len(report.Size) != 2 {
		return nil, &ReadError{Path: path, Message: "gdalinfo report has no raster size"}
	}
	if len(report.GeoTransform) != 6 {
		return nil, &ReadError{Path: path, Message: "raster lacks a geotransform"}
	}
	if report.CoordinateSystem.WKT == "" {
		return nil, &ReadError{Path: path, Message: "raster lacks a coordinate reference system"}
	}
	if len(report.Bands) == 0 {
		return nil, &ReadError{Path: path, Message: "raster has no bands"}
	}

	info := &Info{
		Path:   path,
		Driver: report.DriverShortName,
		Width:  report.Size[0],
		Height: report.Size[1],
		WKT:    report.CoordinateSystem.WKT,
		EPSG:   epsgFromWKT(report.CoordinateSystem.WKT),
	}
	copy(info.GeoTransform[:], report.GeoTransform)

	for _, band := range report.Bands {
		info.Bands = append(info.Bands, Band{
			Index:       band.Band,
			Type:        band.Type,
			ColorInterp: band.ColorInterpretation,
			NoData:      band.NoDataValue,
			HasPalette:  band.ColorTable != nil && band.ColorTable.Count > 0,
		})
	}

	if report.WGS84Extent != nil && len(report.WGS84Extent.Coordinates) > 0 {
		info.Footprint = geojson.NewPolygon(report.WGS84Extent.Coordinates)
		info.BBox = bboxFromRing(report.WGS84Extent.Coordinates[0])
	} else if info.EPSG == 4326 {
		// Already geographic; derive the footprint from the geotransform
		info.Footprint = footprintFromTransform(info.GeoTransform, info.Width, info.Height)
		info.BBox = bboxFromRing(info.Footprint.Coordinates[0])
	} else {
		return nil, &ReadError{Path: path, Message: "no geographic extent could be computed for raster"}
	}

	return info, nil
}

func bboxFromRing(ring [][]float64) geojson.BoundingBox {
	west, south := math.Inf(1), math.Inf(1)
	east, north := math.Inf(-1), math.Inf(-1)
	for _, point := range ring {
		if len(point) < 2 {
			continue
		}
		west = math.Min(west, point[0])
		south = math.Min(south, point[1])
		east = math.Max(east, point[0])
		north = math.Max(north, point[1])
	}
	return geojson.BoundingBox{west, south, east, north}
}

func footprintFromTransform(gt [6]float64, width, height int) *geojson.Polygon {
	w, h := float64(width), float64(height)
	corner := func(px, py float64) []float64 {
		return []float64{
			gt[0] + px*gt[1] + py*gt[2],
			gt[3] + px*gt[4] + py*gt[5],
		}
	}
	ring := [][]float64{
		corner(0, 0),
		corner(0, h),
		corner(w, h),
		corner(w, 0),
		corner(0, 0),
	}
	return geojson.NewPolygon([][][]float64{ring})
}
