// Package cog rewrites a source GeoTIFF as a Cloud-Optimized GeoTIFF. The
// conversion itself is delegated to GDAL's gdal_translate COG driver; this
// package fixes the creation profile, derives output paths and makes the
// write atomic.
package cog

import (
	"fmt"
	"strconv"
)

// Compression codecs supported by the conversion profile
const (
	CompressionDeflate = "DEFLATE"
	CompressionLZW     = "LZW"
)

// Overview resampling methods supported by the conversion profile
const (
	ResamplingNearest = "NEAREST"
	ResamplingAverage = "AVERAGE"
)

// Profile is the fixed set of COG creation options for one conversion
type Profile struct {
	BlockSize          int
	Compression        string
	ZLevel             int
	Predictor          bool
	OverviewResampling string
	NoData             *float64

	// Palette, when set, is written into band 1 of the COG as its colour table
	Palette map[int][4]int
}

// DefaultProfile returns the conversion profile for categorical (classified)
// or continuous raster data. Categorical data must not be interpolated, so
// its overviews use nearest-neighbour resampling.
func DefaultProfile(categorical bool) Profile {
	profile := Profile{
		BlockSize: 512,
		Predictor: true,
	}
	if categorical {
		profile.Compression = CompressionDeflate
		profile.ZLevel = 9
		profile.OverviewResampling = ResamplingNearest
	} else {
		profile.Compression = CompressionLZW
		profile.OverviewResampling = ResamplingAverage
	}
	return profile
}

// translateArgs assembles the gdal_translate argument vector for this
// profile. Deterministic for a given profile and path pair.
func (p Profile) translateArgs(source, dest string) []string {
	args := []string{
		"-of", "COG",
		"-co", "NUM_THREADS=ALL_CPUS",
		"-co", fmt.Sprintf("BLOCKSIZE=%d", p.BlockSize),
		"-co", "COMPRESS=" + p.Compression,
	}
	if p.Compression == CompressionDeflate && p.ZLevel > 0 {
		args = append(args, "-co", fmt.Sprintf("LEVEL=%d", p.ZLevel))
	}
	if p.Predictor {
		args = append(args, "-co", "PREDICTOR=YES")
	}
	args = append(args,
		"-co", "OVERVIEWS=IGNORE_EXISTING",
		"-co", "RESAMPLING="+p.OverviewResampling,
	)
	if p.NoData != nil {
		args = append(args, "-a_nodata", strconv.FormatFloat(*p.NoData, 'f', -1, 64))
	}
	return append(args, source, dest)
}
