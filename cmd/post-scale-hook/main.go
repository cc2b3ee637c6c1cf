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

// post-scale-hook records the scale information piped to it by the
// autoscaler after each scaling decision, overwriting a fixed file so the
// latest decision can be inspected. The file path defaults to
// /post_scale_data.json and can be overridden through the 'postScaleDataPath'
// environment variable.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/postscale"
)

const dataPathEnvName = "postScaleDataPath"

func main() {
	flag.Parse()

	sink := postscale.NewSink()
	if path, exists := os.LookupEnv(dataPathEnvName); exists {
		sink.Path = path
	}

	code := hook.NewRunner().Run(sink.Record)
	glog.Flush()
	os.Exit(code)
}
