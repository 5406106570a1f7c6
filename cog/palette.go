package cog

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/ausgeo/dlcd-stac/raster"
)

// buildPaletteVRT wraps the source raster in a VRT that attaches the given
// colour table to band 1. gdal_translate reads the VRT in place of the source
// and carries the table through to the COG.
func buildPaletteVRT(info *raster.Info, palette map[int][4]int) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "<VRTDataset rasterXSize=\"%d\" rasterYSize=\"%d\">\n", info.Width, info.Height)
	if info.WKT != "" {
		b.WriteString("  <SRS>")
		xml.EscapeText(&b, []byte(info.WKT))
		b.WriteString("</SRS>\n")
	}
	gt := info.GeoTransform
	fmt.Fprintf(&b, "  <GeoTransform>%g, %g, %g, %g, %g, %g</GeoTransform>\n",
		gt[0], gt[1], gt[2], gt[3], gt[4], gt[5])
	for _, band := range info.Bands {
		fmt.Fprintf(&b, "  <VRTRasterBand dataType=\"%s\" band=\"%d\">\n", band.Type, band.Index)
		if band.NoData != nil {
			fmt.Fprintf(&b, "    <NoDataValue>%g</NoDataValue>\n", *band.NoData)
		}
		if band.Index == 1 {
			b.WriteString("    <ColorInterp>Palette</ColorInterp>\n")
			b.WriteString("    <ColorTable>\n")
			for _, entry := range paletteEntries(palette) {
				fmt.Fprintf(&b, "      <Entry c1=\"%d\" c2=\"%d\" c3=\"%d\" c4=\"%d\"/>\n",
					entry[0], entry[1], entry[2], entry[3])
			}
			b.WriteString("    </ColorTable>\n")
		}
		b.WriteString("    <SimpleSource>\n")
		b.WriteString("      <SourceFilename relativeToVRT=\"0\">")
		xml.EscapeText(&b, []byte(info.Path))
		b.WriteString("</SourceFilename>\n")
		fmt.Fprintf(&b, "      <SourceBand>%d</SourceBand>\n", band.Index)
		b.WriteString("    </SimpleSource>\n")
		b.WriteString("  </VRTRasterBand>\n")
	}
	b.WriteString("</VRTDataset>\n")
	return []byte(b.String())
}

// paletteEntries flattens the colour map into GDAL's positional entry list;
// class values with no colour get a transparent entry
func paletteEntries(palette map[int][4]int) [][4]int {
	maxValue := 0
	for value := range palette {
		if value > maxValue {
			maxValue = value
		}
	}
	entries := make([][4]int, maxValue+1)
	for value, colour := range palette {
		if value >= 0 {
			entries[value] = colour
		}
	}
	return entries
}
