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
	"log"
	"net/http"

	"github.com/gorilla/mux"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/ausgeo/dlcd-stac/catalog"
	"github.com/ausgeo/dlcd-stac/util"
)

func serveAction(c *cli.Context) error {
	logContext := &(util.BasicLogContext{})

	destDir, err := resolveDestDir(c)
	if err != nil {
		return err
	}

	portStr := util.GetPortStr()
	router := catalog.NewRouter(destDir)

	util.LogInfo(logContext, fmt.Sprintf("Serving STAC catalog from %s on %s", destDir, portStr))
	launchServerFunc(portStr, router)
	return nil
}

var launchServerFunc = launchServer

func launchServer(portStr string, router *mux.Router) {
	server := http.Server{
		Addr:    portStr,
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}
