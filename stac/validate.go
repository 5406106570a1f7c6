package stac

import "fmt"

// Validate checks the STAC required fields of an Item
func (item *Item) Validate() error {
	if item.Type != "Feature" {
		return fmt.Errorf("item %q: type must be \"Feature\", got %q", item.ID, item.Type)
	}
	if item.Version == "" {
		return fmt.Errorf("item %q: missing stac_version", item.ID)
	}
	if item.ID == "" {
		return fmt.Errorf("item: missing id")
	}
	if item.Geometry == nil {
		return fmt.Errorf("item %q: missing geometry", item.ID)
	}
	if len(item.BBox) != 4 {
		return fmt.Errorf("item %q: bbox must have 4 elements, got %d", item.ID, len(item.BBox))
	}
	if item.Properties == nil || item.PropertyString("datetime") == "" {
		return fmt.Errorf("item %q: missing properties.datetime", item.ID)
	}
	if len(item.Assets) == 0 {
		return fmt.Errorf("item %q: missing assets", item.ID)
	}
	if item.Links == nil {
		return fmt.Errorf("item %q: missing links", item.ID)
	}
	return nil
}

// Validate checks the STAC required fields of a Collection
func (c *Collection) Validate() error {
	if c.Type != "Collection" {
		return fmt.Errorf("collection %q: type must be \"Collection\", got %q", c.ID, c.Type)
	}
	if c.Version == "" {
		return fmt.Errorf("collection %q: missing stac_version", c.ID)
	}
	if c.ID == "" {
		return fmt.Errorf("collection: missing id")
	}
	if c.Description == "" {
		return fmt.Errorf("collection %q: missing description", c.ID)
	}
	if c.License == "" {
		return fmt.Errorf("collection %q: missing license", c.ID)
	}
	if len(c.Extent.Spatial.BBox) == 0 || len(c.Extent.Spatial.BBox[0]) != 4 {
		return fmt.Errorf("collection %q: missing spatial extent", c.ID)
	}
	if len(c.Extent.Temporal.Interval) == 0 || len(c.Extent.Temporal.Interval[0]) != 2 {
		return fmt.Errorf("collection %q: missing temporal extent", c.ID)
	}
	if c.Links == nil {
		return fmt.Errorf("collection %q: missing links", c.ID)
	}
	return nil
}

// ValidateContainment checks the cross-entity invariant that every item lies
// inside the collection's spatial and temporal extents
func (c *Collection) ValidateContainment(items []*Item) error {
	bbox := c.Extent.Spatial.BBox[0]
	interval := c.Extent.Temporal.Interval[0]
	for _, item := range items {
		if !bboxContains(bbox, item.BBox) {
			return fmt.Errorf("item %q: bbox %v outside collection extent %v", item.ID, item.BBox, bbox)
		}
		datetime := item.PropertyString("datetime")
		if interval[0] != nil && datetime < *interval[0] {
			return fmt.Errorf("item %q: datetime %s before collection interval start %s", item.ID, datetime, *interval[0])
		}
		if interval[1] != nil && datetime > *interval[1] {
			return fmt.Errorf("item %q: datetime %s after collection interval end %s", item.ID, datetime, *interval[1])
		}
	}
	return nil
}
