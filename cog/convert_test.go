package cog

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ausgeo/dlcd-stac/raster"
	"github.com/ausgeo/dlcd-stac/util"
)

func writeSourceFile(t *testing.T, dir string) string {
	source := filepath.Join(dir, "input.tif")
	assert.Nil(t, ioutil.WriteFile(source, []byte("not really a tiff"), 0644))
	return source
}

func TestConvert_MissingSourceFails(t *testing.T) {
	// Mock
	dir := t.TempDir()
	dest := filepath.Join(dir, "out_cog.tif")
	runGdalTranslate = func(bin string, args []string) ([]byte, error) {
		t.Fatal("gdal_translate must not run for a missing source")
		return nil, nil
	}

	// Tested code
	err := Convert(&Context{}, &raster.Info{Path: filepath.Join(dir, "missing.tif")}, dest, DefaultProfile(true))

	// Asserts
	assert.NotNil(t, err)
	assert.IsType(t, &util.PathError{}, err)
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no destination file may be created on failure")
}

func TestConvert_WritesViaTempThenRename(t *testing.T) {
	// Mock
	dir := t.TempDir()
	source := writeSourceFile(t, dir)
	dest := filepath.Join(dir, "input_cog.tif")
	var sawDest string
	runGdalTranslate = func(bin string, args []string) ([]byte, error) {
		sawDest = args[len(args)-1]
		return nil, ioutil.WriteFile(sawDest, []byte("cog bytes"), 0644)
	}

	// Tested code
	err := Convert(&Context{}, &raster.Info{Path: source}, dest, DefaultProfile(true))

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, dest+".partial", sawDest, "conversion must target a temp path")
	_, statErr := os.Stat(sawDest)
	assert.True(t, os.IsNotExist(statErr), "temp file must be renamed away")
	contents, readErr := ioutil.ReadFile(dest)
	assert.Nil(t, readErr)
	assert.Equal(t, "cog bytes", string(contents))
}

func TestConvert_TranslateFailureSurfacesConversionError(t *testing.T) {
	// Mock
	dir := t.TempDir()
	source := writeSourceFile(t, dir)
	dest := filepath.Join(dir, "input_cog.tif")
	runGdalTranslate = func(bin string, args []string) ([]byte, error) {
		return []byte("ERROR 1: unsupported dtype"), errors.New("exit status 1")
	}

	// Tested code
	err := Convert(&Context{}, &raster.Info{Path: source}, dest, DefaultProfile(true))

	// Asserts
	assert.NotNil(t, err)
	conversionErr, ok := err.(*ConversionError)
	assert.True(t, ok, "expected *ConversionError, got %T", err)
	assert.Contains(t, conversionErr.Message, "unsupported dtype")
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvert_AppliesColourTableViaVRT(t *testing.T) {
	// Mock
	dir := t.TempDir()
	source := writeSourceFile(t, dir)
	dest := filepath.Join(dir, "input_cog.tif")
	info := &raster.Info{
		Path:         source,
		Width:        4,
		Height:       4,
		WKT:          `GEOGCS["WGS 84",AUTHORITY["EPSG","4326"]]`,
		GeoTransform: [6]float64{140.0, 0.25, 0, -34.0, 0, -0.25},
		Bands:        []raster.Band{{Index: 1, Type: "Byte"}},
	}
	profile := DefaultProfile(true)
	profile.Palette = map[int][4]int{0: {0, 0, 0, 0}, 2: {130, 130, 130, 255}}

	var vrtContents string
	runGdalTranslate = func(bin string, args []string) ([]byte, error) {
		data, err := ioutil.ReadFile(args[len(args)-2])
		if err != nil {
			return nil, err
		}
		vrtContents = string(data)
		return nil, ioutil.WriteFile(args[len(args)-1], []byte("cog"), 0644)
	}

	// Tested code
	err := Convert(&Context{}, info, dest, profile)

	// Asserts
	assert.Nil(t, err)
	assert.Contains(t, vrtContents, "<ColorInterp>Palette</ColorInterp>")
	assert.Contains(t, vrtContents, `<Entry c1="130" c2="130" c3="130" c4="255"/>`)
	// value 1 has no colour and gets a transparent entry
	assert.Equal(t, 3, strings.Count(vrtContents, "<Entry "))
	assert.Contains(t, vrtContents, "rasterXSize=\"4\"")
	_, statErr := os.Stat(dest + ".vrt")
	assert.True(t, os.IsNotExist(statErr), "VRT side input must be cleaned up")
	_, statErr = os.Stat(dest)
	assert.Nil(t, statErr)
}

func TestConvert_UsesConfiguredBinary(t *testing.T) {
	// Mock
	dir := t.TempDir()
	source := writeSourceFile(t, dir)
	dest := filepath.Join(dir, "input_cog.tif")
	var sawBin string
	runGdalTranslate = func(bin string, args []string) ([]byte, error) {
		sawBin = bin
		return nil, ioutil.WriteFile(args[len(args)-1], []byte("x"), 0644)
	}

	// Tested code
	err := Convert(&Context{GdalTranslateBin: "/opt/gdal/bin/gdal_translate"}, &raster.Info{Path: source}, dest, DefaultProfile(true))

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, "/opt/gdal/bin/gdal_translate", sawBin)
}
