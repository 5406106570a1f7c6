package cog

import (
	"path/filepath"
	"strings"
)

// DerivePath maps a source raster path to its COG output path inside
// destDir: `<name>.tif` becomes `<name>_cog.tif`. The mapping is pure; it
// never touches the filesystem.
func DerivePath(destDir, source string) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	switch strings.ToLower(ext) {
	case ".tif", ".tiff":
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(destDir, base+"_cog.tif")
}
