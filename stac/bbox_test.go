package stac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestUnionBBox(t *testing.T) {
	union := UnionBBox([]geojson.BoundingBox{
		{140.0, -35.0, 141.0, -34.0},
		{139.0, -36.0, 140.5, -35.5},
	})

	assert.Equal(t, geojson.BoundingBox{139.0, -36.0, 141.0, -34.0}, union)
}

func TestUnionBBox_SingleBoxIsIdentity(t *testing.T) {
	bbox := geojson.BoundingBox{140.0, -35.0, 141.0, -34.0}

	assert.Equal(t, bbox, UnionBBox([]geojson.BoundingBox{bbox}))
}

func TestUnionBBox_Empty(t *testing.T) {
	assert.Nil(t, UnionBBox(nil))
	assert.Nil(t, UnionBBox([]geojson.BoundingBox{{140.0}}))
}

func TestBBoxContains(t *testing.T) {
	outer := []float64{110.0, -45.0, 155.0, -10.0}

	assert.True(t, bboxContains(outer, []float64{140.0, -35.0, 141.0, -34.0}))
	assert.True(t, bboxContains(outer, outer))
	assert.False(t, bboxContains(outer, []float64{109.0, -35.0, 141.0, -34.0}))
	assert.False(t, bboxContains(outer, []float64{140.0, -35.0}))
}

func TestBBoxIntersects(t *testing.T) {
	a := []float64{140.0, -35.0, 141.0, -34.0}

	assert.True(t, BBoxIntersects(a, []float64{140.5, -34.5, 142.0, -33.0}))
	assert.True(t, BBoxIntersects(a, a))
	assert.False(t, BBoxIntersects(a, []float64{150.0, -35.0, 151.0, -34.0}))
	assert.False(t, BBoxIntersects(a, nil))
}
