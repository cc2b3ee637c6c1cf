/*
Copyright 2025 The Custom Pod Autoscaler Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// metric-server runs the demo application the pod metric hooks scale on; it
// serves a single bounded metric over HTTP that can be incremented and
// decremented to drive the autoscaler up and down.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/metricserver"
)

const (
	hostEnvName = "host"
	portEnvName = "port"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = 5000
)

func main() {
	flag.Parse()
	defer glog.Flush()

	host, exists := os.LookupEnv(hostEnvName)
	if !exists {
		host = defaultHost
	}

	port := defaultPort
	if portValue, exists := os.LookupEnv(portEnvName); exists {
		parsed, err := strconv.Atoi(portValue)
		if err != nil {
			glog.Fatalf("Invalid port provided: %v", err)
		}
		port = parsed
	}

	api := &metricserver.API{
		Router: chi.NewRouter(),
		State:  metricserver.NewState(),
	}
	api.Routes()

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", host, port),
		Handler: api.Router,
	}

	glog.Infof("Starting demo metric server on %s", srv.Addr)
	glog.Fatal(srv.ListenAndServe())
}
