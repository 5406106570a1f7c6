// Package catalog serves a generated STAC catalog directory over HTTP:
// the collection document, single items by ID, and an item search endpoint
// with an optional bounding box filter. It is read-only; the CLI commands
// are the only writers.
package catalog

import (
	"github.com/ausgeo/dlcd-stac/util"
)

// CollectionFileName is the collection document inside a catalog directory
const CollectionFileName = "collection.json"

// Context is the context for catalog serving operations
type Context struct {
	DocRoot   string
	sessionID string
}

// AppName returns the application name for logging
func (c *Context) AppName() string {
	return "dlcd-stac"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}
