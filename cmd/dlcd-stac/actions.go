// Copyright 2021, the dlcd-stac authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/ausgeo/dlcd-stac/catalog"
	"github.com/ausgeo/dlcd-stac/cog"
	"github.com/ausgeo/dlcd-stac/dlcd"
	"github.com/ausgeo/dlcd-stac/raster"
	"github.com/ausgeo/dlcd-stac/stac"
	"github.com/ausgeo/dlcd-stac/util"
)

const version = "0.2.0"

func versionAction(c *cli.Context) {
	fmt.Println(version)
}

// resolveDestDir validates the -d flag: it must name an existing directory
func resolveDestDir(c *cli.Context) (string, error) {
	dest := c.String("destination")
	if dest == "" {
		return "", util.NewPathError("", "destination directory is required (-d)")
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return "", util.NewPathError(dest, "could not resolve destination directory")
	}
	fileInfo, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", util.NewPathError(dest, "destination directory not found")
		}
		return "", util.NewPathError(dest, "destination directory is not readable")
	}
	if !fileInfo.IsDir() {
		return "", util.NewPathError(dest, "destination is not a directory")
	}
	return abs, nil
}

func loadDatasetConfig() (dlcd.Config, error) {
	return dlcd.Load(util.GetDatasetConfigPath())
}

func createCollectionAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	destDir, err := resolveDestDir(c)
	if err != nil {
		return err
	}
	cfg, err := loadDatasetConfig()
	if err != nil {
		return err
	}

	// Existing item documents in the destination feed the collection's
	// spatial extent; with none the dataset-wide constant is used
	items, err := catalog.ListItems(destDir)
	if err != nil {
		return err
	}

	collection, err := stac.CreateCollection(cfg, items)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(destDir, catalog.CollectionFileName)
	if err = stac.WriteCollection(collection, outputPath); err != nil {
		return err
	}
	util.LogInfo(logContext, fmt.Sprintf("Wrote STAC Collection to %s (%d items)", outputPath, len(items)))
	return nil
}

func createCogAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	destDir, err := resolveDestDir(c)
	if err != nil {
		return err
	}
	source := c.String("source")
	if source == "" {
		return util.NewPathError("", "source GeoTiff is required (-s)")
	}
	cfg, err := loadDatasetConfig()
	if err != nil {
		return err
	}

	info, err := raster.Inspect(&raster.Context{}, source)
	if err != nil {
		return err
	}

	profile := cog.DefaultProfile(info.Categorical())
	if len(info.Bands) > 0 && info.Bands[0].NoData != nil {
		profile.NoData = info.Bands[0].NoData
	} else {
		noData := cfg.NoDataValue
		profile.NoData = &noData
	}
	if info.Categorical() {
		profile.Palette = cfg.ColourMap
	}

	outputPath := cog.DerivePath(destDir, source)
	if err = cog.Convert(&cog.Context{}, info, outputPath, profile); err != nil {
		return err
	}
	util.LogInfo(logContext, fmt.Sprintf("Wrote COG to %s", outputPath))
	return nil
}

func createItemAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	destDir, err := resolveDestDir(c)
	if err != nil {
		return err
	}
	cogPath := c.String("cog")
	if cogPath == "" {
		return util.NewPathError("", "COG path is required (-c)")
	}
	cfg, err := loadDatasetConfig()
	if err != nil {
		return err
	}

	info, err := raster.Inspect(&raster.Context{}, cogPath)
	if err != nil {
		return err
	}

	item, err := stac.CreateItem(cfg, info, cogPath)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(destDir, item.ID+".json")
	if err = stac.WriteItem(item, outputPath); err != nil {
		return err
	}
	util.LogInfo(logContext, fmt.Sprintf("Wrote STAC Item to %s", outputPath))
	return nil
}
