package stac

import (
	"sort"

	"github.com/venicegeo/geojson-go/geojson"
)

// ProjectionMetadata is a mixin carrying the raster's native projection
// details, applied as STAC projection extension properties
type ProjectionMetadata struct {
	EPSG      int
	Transform [6]float64
	Shape     [2]int
	BBox      geojson.BoundingBox
}

// Apply implements the ItemMixin interface
func (pm ProjectionMetadata) Apply(item *Item) error {
	hasExtension := false
	for _, uri := range item.Extensions {
		if uri == ProjectionExtensionURI {
			hasExtension = true
			break
		}
	}
	if !hasExtension {
		item.Extensions = append(item.Extensions, ProjectionExtensionURI)
	}

	// An unknown EPSG code is omitted rather than published as 0
	if pm.EPSG != 0 {
		item.Properties["proj:epsg"] = pm.EPSG
	}
	item.Properties["proj:transform"] = pm.Transform[:]
	// proj:shape is row-major: height then width
	item.Properties["proj:shape"] = []int{pm.Shape[1], pm.Shape[0]}
	if len(pm.BBox) == 4 {
		item.Properties["proj:bbox"] = []float64(pm.BBox)
	}
	return nil
}

// LegendClass is one entry of the land cover classification legend
type LegendClass struct {
	Value       int    `json:"value"`
	Description string `json:"description"`
}

// ClassificationLegend is a mixin carrying the dataset's land cover classes
type ClassificationLegend struct {
	Classes map[int]string
}

// Apply implements the ItemMixin interface
func (cl ClassificationLegend) Apply(item *Item) error {
	classes := make([]LegendClass, 0, len(cl.Classes))
	for value, description := range cl.Classes {
		classes = append(classes, LegendClass{Value: value, Description: description})
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Value < classes[j].Value })
	item.Properties["landcover:classes"] = classes
	return nil
}
