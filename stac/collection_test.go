package stac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/ausgeo/dlcd-stac/dlcd"
)

func mockItemWithBBox(id string, bbox geojson.BoundingBox) *Item {
	info := mockInfo()
	info.BBox = bbox
	item, _ := CreateItem(dlcd.Default(), info, "/out/"+id+"_cog.tif")
	return item
}

func TestCreateCollection_NoItemsUsesDatasetExtent(t *testing.T) {
	// Tested code
	collection, err := CreateCollection(dlcd.Default(), nil)

	// Asserts
	assert.Nil(t, err)
	assert.Nil(t, collection.Validate())
	assert.Equal(t, "Collection", collection.Type)
	assert.Equal(t, "ga-dlcd", collection.ID)
	assert.Equal(t, "CC-BY-4.0", collection.License)
	assert.Equal(t, [][]float64{{110.0, -45.004798, 155.009189, -10.0}}, collection.Extent.Spatial.BBox)
}

func TestCreateCollection_TemporalExtent(t *testing.T) {
	collection, err := CreateCollection(dlcd.Default(), nil)

	assert.Nil(t, err)
	interval := collection.Extent.Temporal.Interval
	assert.Len(t, interval, 1)
	assert.Equal(t, "2002-01-01T00:00:00Z", *interval[0][0])
	assert.Equal(t, "2015-12-31T23:59:59Z", *interval[0][1])
}

func TestCreateCollection_UnionOfItemBBoxes(t *testing.T) {
	// Mock
	items := []*Item{
		mockItemWithBBox("a", geojson.BoundingBox{140.0, -35.0, 141.0, -34.0}),
		mockItemWithBBox("b", geojson.BoundingBox{138.5, -33.0, 139.5, -32.0}),
		mockItemWithBBox("c", geojson.BoundingBox{140.5, -36.0, 142.0, -35.5}),
	}

	// Tested code
	collection, err := CreateCollection(dlcd.Default(), items)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, [][]float64{{138.5, -36.0, 142.0, -32.0}}, collection.Extent.Spatial.BBox)
	assert.Nil(t, collection.ValidateContainment(items))
}

func TestCreateCollection_LinksItems(t *testing.T) {
	items := []*Item{
		mockItemWithBBox("a", geojson.BoundingBox{140.0, -35.0, 141.0, -34.0}),
	}

	collection, err := CreateCollection(dlcd.Default(), items)

	assert.Nil(t, err)
	var itemLinks []dlcd.Link
	for _, link := range collection.Links {
		if link.Rel == "item" {
			itemLinks = append(itemLinks, link)
		}
	}
	assert.Len(t, itemLinks, 1)
	assert.Equal(t, "a.json", itemLinks[0].Href)
}

func TestCreateCollection_ItemWithoutBBoxFails(t *testing.T) {
	items := []*Item{{Type: "Feature", Version: Version, ID: "broken"}}

	_, err := CreateCollection(dlcd.Default(), items)

	assert.NotNil(t, err)
	assert.IsType(t, &MetadataError{}, err)
}

func TestCreateCollection_InvalidConfigFails(t *testing.T) {
	cfg := dlcd.Default()
	cfg.License = ""

	_, err := CreateCollection(cfg, nil)

	assert.NotNil(t, err)
	assert.IsType(t, &MetadataError{}, err)
}

func TestCreateCollection_ItemOutsideTemporalExtentFails(t *testing.T) {
	// Mock: per-file dates put this item before the dataset's temporal range
	cfg := dlcd.Default()
	cfg.DeriveItemDates = true
	item, err := CreateItem(cfg, mockInfo(), "/out/DLCD_v2-1_MODIS_EVI_13_20010101-20011231_cog.tif")
	assert.Nil(t, err)
	assert.Equal(t, "2001-01-01T00:00:00Z", item.PropertyString("datetime"))

	// Tested code
	_, err = CreateCollection(dlcd.Default(), []*Item{item})

	// Asserts
	assert.NotNil(t, err)
	assert.IsType(t, &MetadataError{}, err)
}

func TestValidateContainment_DetectsEscapees(t *testing.T) {
	// Mock: a collection pinned to the dataset extent and an item outside it
	collection, err := CreateCollection(dlcd.Default(), nil)
	assert.Nil(t, err)
	outside := mockItemWithBBox("rogue", geojson.BoundingBox{10.0, 40.0, 11.0, 41.0})

	// Tested code
	err = collection.ValidateContainment([]*Item{outside})

	// Asserts
	assert.NotNil(t, err)
}
