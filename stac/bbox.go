package stac

import (
	"math"

	"github.com/venicegeo/geojson-go/geojson"
)

// UnionBBox computes the exact geometric union of the given bounding boxes.
// Returns nil when no boxes are supplied.
func UnionBBox(bboxes []geojson.BoundingBox) geojson.BoundingBox {
	if len(bboxes) == 0 {
		return nil
	}
	west, south := math.Inf(1), math.Inf(1)
	east, north := math.Inf(-1), math.Inf(-1)
	for _, bbox := range bboxes {
		if len(bbox) != 4 {
			continue
		}
		west = math.Min(west, bbox[0])
		south = math.Min(south, bbox[1])
		east = math.Max(east, bbox[2])
		north = math.Max(north, bbox[3])
	}
	if math.IsInf(west, 1) {
		return nil
	}
	return geojson.BoundingBox{west, south, east, north}
}

// bboxContains reports whether outer fully contains inner
func bboxContains(outer, inner []float64) bool {
	if len(outer) != 4 || len(inner) != 4 {
		return false
	}
	return inner[0] >= outer[0] && inner[1] >= outer[1] &&
		inner[2] <= outer[2] && inner[3] <= outer[3]
}

// BBoxIntersects reports whether two boxes overlap
func BBoxIntersects(a, b []float64) bool {
	if len(a) != 4 || len(b) != 4 {
		return false
	}
	return a[0] <= b[2] && b[0] <= a[2] && a[1] <= b[3] && b[1] <= a[3]
}
