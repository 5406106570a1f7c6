package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/ausgeo/dlcd-stac/stac"
	"github.com/ausgeo/dlcd-stac/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// CollectionHandler is a handler for /collection
type CollectionHandler struct {
	Context Context
}

// NewCollectionHandler creates a handler serving the collection document
// from the given catalog directory
func NewCollectionHandler(docRoot string) *CollectionHandler {
	return &CollectionHandler{Context: Context{DocRoot: docRoot}}
}

// ServeHTTP implements the http.Handler interface for the CollectionHandler type
func (h CollectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	collection, err := stac.ReadCollection(h.Context.DocRoot + "/" + CollectionFileName)
	if os.IsNotExist(err) {
		message := "No collection document found; run create-collection first"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}
	if err != nil {
		message := fmt.Sprintf("Could not read collection document: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	writeJSON(w, collection)
}

// ItemHandler is a handler for /items/{id}
type ItemHandler struct {
	Context Context
}

// NewItemHandler creates a handler serving single item documents from the
// given catalog directory
func NewItemHandler(docRoot string) *ItemHandler {
	return &ItemHandler{Context: Context{DocRoot: docRoot}}
}

// ServeHTTP implements the http.Handler interface for the ItemHandler type
func (h ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	itemID, ok := mux.Vars(r)["id"]
	if !ok {
		message := "No item ID found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	item, err := getItem(h.Context.DocRoot, itemID)
	if os.IsNotExist(err) {
		message := fmt.Sprintf("Item not found: %s", itemID)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}
	if err != nil {
		message := fmt.Sprintf("Could not read item %s: %v", itemID, err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

// itemCollection is the STAC ItemCollection wrapper for search results
type itemCollection struct {
	Type     string       `json:"type"`
	Features []*stac.Item `json:"features"`
}

// SearchHandler is a handler for /items, with an optional bbox query filter
type SearchHandler struct {
	Context Context
}

// NewSearchHandler creates a handler searching item documents in the given
// catalog directory
func NewSearchHandler(docRoot string) *SearchHandler {
	return &SearchHandler{Context: Context{DocRoot: docRoot}}
}

// ServeHTTP implements the http.Handler interface for the SearchHandler type
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var bounds geojson.BoundingBox
	if bboxParam := r.FormValue("bbox"); bboxParam != "" {
		var err error
		bounds, err = geojson.NewBoundingBox(bboxParam)
		if err != nil {
			message := fmt.Sprintf("The bbox value of %v is invalid", bboxParam)
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
			return
		}
	}

	items, err := ListItems(h.Context.DocRoot)
	if err != nil {
		message := fmt.Sprintf("Could not list catalog items: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	results := filterItems(items, bounds)
	if results == nil {
		results = []*stac.Item{}
	}
	writeJSON(w, itemCollection{Type: "FeatureCollection", Features: results})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.Encode(payload)
}

// NewRouter assembles the catalog routes over the given directory
func NewRouter(docRoot string) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte("OK"))
	})
	router.Handle("/collection", NewCollectionHandler(docRoot))
	router.Handle("/items", NewSearchHandler(docRoot))
	router.Handle("/items/{id}", NewItemHandler(docRoot))
	return router
}
