package stac

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/ausgeo/dlcd-stac/dlcd"
)

func setSelfLink(links []dlcd.Link, path string) []dlcd.Link {
	self := dlcd.Link{Rel: "self", Href: filepath.Base(path), Type: "application/json"}
	for i, link := range links {
		if link.Rel == "self" {
			links[i] = self
			return links
		}
	}
	return append(links, self)
}

// WriteItem validates the item and writes it as JSON to path. The write is
// not atomic; item documents are idempotent, fully regenerable outputs.
func WriteItem(item *Item, path string) error {
	item.Links = setSelfLink(item.Links, path)
	if err := item.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, append(data, '\n'), 0644)
}

// WriteCollection validates the collection and writes it as JSON to path
func WriteCollection(collection *Collection, path string) error {
	collection.Links = setSelfLink(collection.Links, path)
	if err := collection.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, append(data, '\n'), 0644)
}

// ReadItem parses an item document from a JSON file
func ReadItem(path string) (*Item, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var item Item
	if err = json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ReadCollection parses a collection document from a JSON file
func ReadCollection(path string) (*Collection, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var collection Collection
	if err = json.Unmarshal(data, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}
