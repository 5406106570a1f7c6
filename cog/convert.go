package cog

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"

	"github.com/ausgeo/dlcd-stac/raster"
	"github.com/ausgeo/dlcd-stac/util"
)

// ConversionError indicates a failed COG conversion or write
type ConversionError struct {
	Source   string
	Dest     string
	Message  string
	CausedBy error
}

func (err *ConversionError) Error() string {
	if err.CausedBy != nil {
		return fmt.Sprintf("could not convert %q to COG at %q: %s: %v", err.Source, err.Dest, err.Message, err.CausedBy)
	}
	return fmt.Sprintf("could not convert %q to COG at %q: %s", err.Source, err.Dest, err.Message)
}

// Context is the context for COG conversion operations
type Context struct {
	GdalTranslateBin string
	sessionID        string
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

// runGdalTranslate invokes the gdal_translate binary; swappable for tests
var runGdalTranslate = func(bin string, args []string) ([]byte, error) {
	return exec.Command(bin, args...).CombinedOutput()
}

// Convert rewrites the inspected raster as a Cloud-Optimized GeoTIFF at
// dest. The COG is written to a temporary file next to dest and renamed into
// place, so a crash mid-write never leaves a corrupt file at dest. An
// existing file at dest is overwritten. Failures are surfaced immediately
// and never retried. When the profile carries a palette the translation goes
// through a VRT side input attaching it as the band 1 colour table.
func Convert(ctx *Context, info *raster.Info, dest string, profile Profile) error {
	source := info.Path
	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return util.NewPathError(source, "source raster does not exist")
		}
		return util.NewPathError(source, "source raster is not readable")
	}

	bin := ctx.GdalTranslateBin
	if bin == "" {
		bin = util.GetGdalTranslateBin()
	}

	translateSource := source
	if len(profile.Palette) > 0 {
		vrtPath := dest + ".vrt"
		if err := ioutil.WriteFile(vrtPath, buildPaletteVRT(info, profile.Palette), 0644); err != nil {
			return &ConversionError{Source: source, Dest: dest, Message: "could not write colour table VRT", CausedBy: err}
		}
		defer os.Remove(vrtPath)
		translateSource = vrtPath
	}

	tempDest := dest + ".partial"
	args := profile.translateArgs(translateSource, tempDest)

	util.LogInfo(ctx, fmt.Sprintf("Converting %s to COG at %s", source, dest))
	output, err := runGdalTranslate(bin, args)
	if err != nil {
		os.Remove(tempDest)
		return &ConversionError{Source: source, Dest: dest, Message: string(output), CausedBy: err}
	}

	if err = os.Rename(tempDest, dest); err != nil {
		os.Remove(tempDest)
		return &ConversionError{Source: source, Dest: dest, Message: "could not move COG into place", CausedBy: err}
	}

	util.LogAudit(ctx, util.LogAuditInput{
		Actor:    "cog.Convert",
		Action:   "write",
		Actee:    dest,
		Message:  "COG written",
		Severity: util.INFO,
	})
	return nil
}
