package util

import (
	"os"
)

// Environment variables
const (
	GDALINFO_BIN       = "GDALINFO_BIN"
	GDAL_TRANSLATE_BIN = "GDAL_TRANSLATE_BIN"
	DLCD_CONFIG        = "DLCD_CONFIG"
	PORT               = "PORT"
)

const defaultGdalinfoBin = "gdalinfo"
const defaultGdalTranslateBin = "gdal_translate"

// GetGdalinfoBin returns the gdalinfo executable to invoke, from the
// GDALINFO_BIN environment variable or the default found on PATH
func GetGdalinfoBin() string {
	if bin, ok := os.LookupEnv(GDALINFO_BIN); ok && bin != "" {
		return bin
	}
	return defaultGdalinfoBin
}

// GetGdalTranslateBin returns the gdal_translate executable to invoke, from
// the GDAL_TRANSLATE_BIN environment variable or the default found on PATH
func GetGdalTranslateBin() string {
	if bin, ok := os.LookupEnv(GDAL_TRANSLATE_BIN); ok && bin != "" {
		return bin
	}
	return defaultGdalTranslateBin
}

// GetDatasetConfigPath returns the optional dataset configuration override
// file from the DLCD_CONFIG environment variable; empty means defaults only
func GetDatasetConfigPath() string {
	path, ok := os.LookupEnv(DLCD_CONFIG)
	if !ok {
		return ""
	}
	return path
}

// GetPortStr returns the listen address for the serve command
func GetPortStr() string {
	if port, ok := os.LookupEnv(PORT); ok {
		return ":" + port
	}
	return ":8080"
}
