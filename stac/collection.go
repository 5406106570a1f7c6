package stac

import (
	"github.com/ausgeo/dlcd-stac/dlcd"
	"github.com/venicegeo/geojson-go/geojson"
)

// CreateCollection builds the dataset's STAC Collection. When items are
// supplied the spatial extent is the union of their bounding boxes, each item
// is linked and every item is checked against the collection's spatial and
// temporal extents; with no items the dataset-wide constant extent is used.
func CreateCollection(cfg dlcd.Config, items []*Item) (*Collection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &MetadataError{Subject: cfg.ID, Message: err.Error()}
	}

	bbox := geojson.BoundingBox(cfg.BoundingBox)
	if len(items) > 0 {
		itemBBoxes := make([]geojson.BoundingBox, len(items))
		for i, item := range items {
			if len(item.BBox) != 4 {
				return nil, &MetadataError{Subject: item.ID, Message: "item has no bounding box"}
			}
			itemBBoxes[i] = item.BBox
		}
		bbox = UnionBBox(itemBBoxes)
	}

	start, end := cfg.TemporalExtent()
	startStr := start.Format(TimeLayout)
	endStr := end.Format(TimeLayout)

	collection := &Collection{
		Type:        "Collection",
		Version:     Version,
		ID:          cfg.ID,
		Title:       cfg.Title,
		Description: cfg.Description,
		Keywords:    cfg.Keywords,
		License:     cfg.License,
		Providers:   cfg.Providers,
		Extent: Extent{
			Spatial:  SpatialExtent{BBox: [][]float64{bbox}},
			Temporal: TemporalExtent{Interval: [][]*string{{&startStr, &endStr}}},
		},
		Links: []dlcd.Link{
			cfg.LicenseLink,
			cfg.WMSLink,
			{Rel: "root", Href: "collection.json", Type: "application/json"},
		},
	}
	if cfg.ThumbnailURL != "" {
		collection.Assets = map[string]Asset{
			"thumbnail": {Href: cfg.ThumbnailURL, Type: "image/jpeg", Roles: []string{"thumbnail"}},
		}
	}

	for _, item := range items {
		collection.Links = append(collection.Links, dlcd.Link{
			Rel:  "item",
			Href: item.ID + ".json",
			Type: "application/geo+json",
		})
	}
	if err := collection.ValidateContainment(items); err != nil {
		return nil, &MetadataError{Subject: cfg.ID, Message: err.Error()}
	}

	return collection, nil
}
