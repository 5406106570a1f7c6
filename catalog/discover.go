package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ausgeo/dlcd-stac/stac"
	"github.com/venicegeo/geojson-go/geojson"
)

// ListItems loads every item document in the catalog directory, ordered by
// ID. Files that are not item documents are skipped.
func ListItems(docRoot string) ([]*stac.Item, error) {
	entries, err := os.ReadDir(docRoot)
	if err != nil {
		return nil, err
	}

	var items []*stac.Item
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == CollectionFileName || !strings.HasSuffix(name, ".json") {
			continue
		}
		item, err := stac.ReadItem(filepath.Join(docRoot, name))
		if err != nil || item.Type != "Feature" {
			continue
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// filterItems keeps the items whose bbox intersects the given bounds; a nil
// bounds keeps everything
func filterItems(items []*stac.Item, bounds geojson.BoundingBox) []*stac.Item {
	if bounds == nil {
		return items
	}
	filtered := make([]*stac.Item, 0, len(items))
	for _, item := range items {
		if stac.BBoxIntersects(bounds, item.BBox) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// getItem loads a single item document by ID
func getItem(docRoot, id string) (*stac.Item, error) {
	return stac.ReadItem(filepath.Join(docRoot, id+".json"))
}
