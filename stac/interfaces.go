package stac

// ItemCreator is an interface for data that can convert itself to a STAC Item
type ItemCreator interface {
	STACItem() (*Item, error)
}

// ItemMixin is an interface for data that augments an existing STAC Item
type ItemMixin interface {
	Apply(*Item) error
}
