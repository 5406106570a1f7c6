package raster

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/ausgeo/dlcd-stac/util"
)

// runGdalinfo invokes the gdalinfo binary; swappable for tests
var runGdalinfo = func(bin, path string) ([]byte, error) {
	return exec.Command(bin, "-json", path).Output()
}

// Inspect reads the geospatial metadata of the raster at path. It has no
// side effects and fails with a ReadError when the file is missing,
// unreadable, or carries no geospatial metadata.
func Inspect(ctx *Context, path string) (*Info, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ReadError{Path: path, Message: "file does not exist"}
		}
		return nil, &ReadError{Path: path, Message: "file is not readable", CausedBy: err}
	}

	bin := ctx.GdalinfoBin
	if bin == "" {
		bin = util.GetGdalinfoBin()
	}

	util.LogInfo(ctx, fmt.Sprintf("Inspecting raster %s", path))
	body, err := runGdalinfo(bin, path)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, &ReadError{Path: path, Message: string(exitErr.Stderr), CausedBy: err}
		}
		return nil, &ReadError{Path: path, Message: "gdalinfo failed", CausedBy: err}
	}

	info, err := parseGdalinfo(path, body)
	if err != nil {
		return nil, err
	}

	util.LogInfo(ctx, fmt.Sprintf("Raster %s: %dx%d, EPSG:%d, bbox %v",
		path, info.Width, info.Height, info.EPSG, info.BBox))
	return info, nil
}
