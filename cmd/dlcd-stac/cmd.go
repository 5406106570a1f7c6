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
	cli "gopkg.in/urfave/cli.v1"
)

var destinationFlag = cli.StringFlag{
	Name:  "destination, d",
	Usage: "Output directory for generated files",
}

var commands = cli.Commands{
	cli.Command{
		Name:   "create-collection",
		Usage:  "Create the GA DLCD STAC Collection json in a directory",
		Flags:  []cli.Flag{destinationFlag},
		Action: createCollectionAction,
	},
	cli.Command{
		Name:  "create-cog",
		Usage: "Transform a GeoTiff to a Cloud-Optimized GeoTiff",
		Flags: []cli.Flag{
			destinationFlag,
			cli.StringFlag{
				Name:  "source, s",
				Usage: "Path to an input GeoTiff",
			},
		},
		Action: createCogAction,
	},
	cli.Command{
		Name:  "create-item",
		Usage: "Create a STAC Item json from a COG",
		Flags: []cli.Flag{
			destinationFlag,
			cli.StringFlag{
				Name:  "cog, c",
				Usage: "Path to the COG asset for the item",
			},
		},
		Action: createItemAction,
	},
	cli.Command{
		Name:   "serve",
		Usage:  "Serve a generated STAC catalog directory over HTTP",
		Flags:  []cli.Flag{destinationFlag},
		Action: serveAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the dlcd-stac CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "dlcd-stac"
	app.Usage = "Create COGs and STAC metadata for the GA Dynamic Land Cover Dataset"
	app.Version = version
	app.Commands = commands
	return
}
