package catalog

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/ausgeo/dlcd-stac/dlcd"
	"github.com/ausgeo/dlcd-stac/raster"
	"github.com/ausgeo/dlcd-stac/stac"
)

func seedCatalog(t *testing.T) string {
	dir := t.TempDir()

	writeItem := func(id string, bbox geojson.BoundingBox) {
		ring := [][]float64{
			{bbox[0], bbox[3]}, {bbox[0], bbox[1]}, {bbox[2], bbox[1]}, {bbox[2], bbox[3]}, {bbox[0], bbox[3]},
		}
		info := &raster.Info{
			Width:        400,
			Height:       400,
			EPSG:         4326,
			WKT:          `GEOGCS["WGS 84",AUTHORITY["EPSG","4326"]]`,
			GeoTransform: [6]float64{bbox[0], 0.0025, 0, bbox[3], 0, -0.0025},
			Bands:        []raster.Band{{Index: 1, Type: "Byte"}},
			Footprint:    geojson.NewPolygon([][][]float64{ring}),
			BBox:         bbox,
		}
		item, err := stac.CreateItem(dlcd.Default(), info, "/cogs/"+id+"_cog.tif")
		assert.Nil(t, err)
		assert.Nil(t, stac.WriteItem(item, filepath.Join(dir, item.ID+".json")))
	}

	writeItem("east", geojson.BoundingBox{140.0, -35.0, 141.0, -34.0})
	writeItem("west", geojson.BoundingBox{115.0, -33.0, 116.0, -32.0})

	items, err := ListItems(dir)
	assert.Nil(t, err)
	collection, err := stac.CreateCollection(dlcd.Default(), items)
	assert.Nil(t, err)
	assert.Nil(t, stac.WriteCollection(collection, filepath.Join(dir, CollectionFileName)))

	return dir
}

func doRequest(router http.Handler, url string) *httptest.ResponseRecorder {
	request := httptest.NewRequest("GET", url, nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func TestCollectionHandler(t *testing.T) {
	// Mock
	router := NewRouter(seedCatalog(t))

	// Tested code
	response := doRequest(router, "/collection")

	// Asserts
	assert.Equal(t, http.StatusOK, response.Code)
	body, _ := ioutil.ReadAll(response.Result().Body)
	var collection stac.Collection
	assert.Nil(t, json.Unmarshal(body, &collection))
	assert.Equal(t, "ga-dlcd", collection.ID)
	assert.Nil(t, collection.Validate())
}

func TestCollectionHandler_MissingDocument(t *testing.T) {
	router := NewRouter(t.TempDir())

	response := doRequest(router, "/collection")

	assert.Equal(t, http.StatusNotFound, response.Code)
}

func TestItemHandler(t *testing.T) {
	router := NewRouter(seedCatalog(t))

	response := doRequest(router, "/items/east")

	assert.Equal(t, http.StatusOK, response.Code)
	body, _ := ioutil.ReadAll(response.Result().Body)
	var item stac.Item
	assert.Nil(t, json.Unmarshal(body, &item))
	assert.Equal(t, "east", item.ID)
}

func TestItemHandler_UnknownID(t *testing.T) {
	router := NewRouter(seedCatalog(t))

	response := doRequest(router, "/items/nope")

	assert.Equal(t, http.StatusNotFound, response.Code)
}

func TestSearchHandler_ListsAll(t *testing.T) {
	router := NewRouter(seedCatalog(t))

	response := doRequest(router, "/items")

	assert.Equal(t, http.StatusOK, response.Code)
	body, _ := ioutil.ReadAll(response.Result().Body)
	var results itemCollection
	assert.Nil(t, json.Unmarshal(body, &results))
	assert.Equal(t, "FeatureCollection", results.Type)
	assert.Len(t, results.Features, 2)
	assert.Equal(t, "east", results.Features[0].ID)
	assert.Equal(t, "west", results.Features[1].ID)
}

func TestSearchHandler_BBoxFilter(t *testing.T) {
	router := NewRouter(seedCatalog(t))

	response := doRequest(router, "/items?bbox=139,-36,142,-33")

	assert.Equal(t, http.StatusOK, response.Code)
	body, _ := ioutil.ReadAll(response.Result().Body)
	var results itemCollection
	assert.Nil(t, json.Unmarshal(body, &results))
	assert.Len(t, results.Features, 1)
	assert.Equal(t, "east", results.Features[0].ID)
}

func TestSearchHandler_InvalidBBox(t *testing.T) {
	router := NewRouter(seedCatalog(t))

	response := doRequest(router, "/items?bbox=not-a-bbox")

	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := NewRouter(seedCatalog(t))

	response := doRequest(router, "/")

	assert.Equal(t, http.StatusOK, response.Code)
	body, _ := ioutil.ReadAll(response.Result().Body)
	assert.Equal(t, "OK", string(body))
}
