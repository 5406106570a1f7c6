package stac

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ausgeo/dlcd-stac/dlcd"
	"github.com/ausgeo/dlcd-stac/raster"
)

// TimeLayout is the RFC 3339 layout used for STAC datetimes
const TimeLayout = "2006-01-02T15:04:05Z"

// DLCD distribution filenames encode the coverage period, e.g.
// DLCD_v2-1_MODIS_EVI_13_20110101-20121231
var dlcdFilenameRE = regexp.MustCompile(`DLCD_v2-1_MODIS_EVI_\d+_(\d{8})-(\d{8})`)

// ItemSource bundles the inputs for building a single STAC Item: the dataset
// configuration, the COG's inspection output and the COG asset path
type ItemSource struct {
	Config  dlcd.Config
	Info    *raster.Info
	CogPath string
}

// STACItem implements the ItemCreator interface
func (src ItemSource) STACItem() (*Item, error) {
	if !src.Info.Complete() {
		return nil, &MetadataError{Subject: src.CogPath, Message: "raster inspection output lacks a CRS or bounding box"}
	}

	id := ItemID(src.CogPath)
	start, end := itemDates(src.Config, id)
	title := fmt.Sprintf("%s %d - %d", src.Config.Title, start.Year(), end.Year())

	item := &Item{
		Type:       "Feature",
		Version:    Version,
		ID:         id,
		Collection: src.Config.ID,
		Geometry:   src.Info.Footprint,
		BBox:       src.Info.BBox,
		Properties: map[string]interface{}{
			"datetime":       start.Format(TimeLayout),
			"start_datetime": start.Format(TimeLayout),
			"end_datetime":   end.Format(TimeLayout),
			"title":          title,
			"description":    src.Config.Description,
		},
		Links: []dlcd.Link{
			{Rel: "collection", Href: "collection.json", Type: "application/json"},
			{Rel: "parent", Href: "collection.json", Type: "application/json"},
		},
		Assets: map[string]Asset{
			"data": {
				Href:  src.CogPath,
				Type:  MediaTypeCOG,
				Title: title,
				Roles: []string{"data"},
			},
		},
	}
	if src.Config.ThumbnailURL != "" {
		item.Assets["thumbnail"] = Asset{
			Href:  src.Config.ThumbnailURL,
			Type:  "image/jpeg",
			Roles: []string{"thumbnail"},
		}
	}

	mixins := []ItemMixin{
		ProjectionMetadata{
			EPSG:      src.Info.EPSG,
			Transform: src.Info.GeoTransform,
			Shape:     [2]int{src.Info.Width, src.Info.Height},
			BBox:      src.Info.BBox,
		},
		ClassificationLegend{Classes: src.Config.Legend},
	}
	for _, mixin := range mixins {
		if err := mixin.Apply(item); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// CreateItem builds a STAC Item for the COG at cogPath from its raster
// inspection output and the dataset configuration
func CreateItem(cfg dlcd.Config, info *raster.Info, cogPath string) (*Item, error) {
	return ItemSource{Config: cfg, Info: info, CogPath: cogPath}.STACItem()
}

// ItemID derives the item identifier from a COG path: the base filename
// without its extension or the `_cog` suffix
func ItemID(cogPath string) string {
	base := filepath.Base(cogPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimSuffix(base, "_cog")
}

// itemDates returns the item's coverage period: the dataset constant, or the
// period encoded in the filename when per-file derivation is configured and
// the name follows the DLCD convention
func itemDates(cfg dlcd.Config, id string) (time.Time, time.Time) {
	start, end := cfg.TemporalExtent()
	if !cfg.DeriveItemDates {
		return start, end
	}

	matches := dlcdFilenameRE.FindStringSubmatch(id)
	if matches == nil {
		return start, end
	}
	fileStart, errStart := time.ParseInLocation("20060102", matches[1], time.UTC)
	fileEnd, errEnd := time.ParseInLocation("20060102", matches[2], time.UTC)
	if errStart != nil || errEnd != nil {
		return start, end
	}
	return fileStart, fileEnd
}
