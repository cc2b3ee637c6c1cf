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

// updown-scaler provides the evaluation logic for an autoscaler whose metric
// hook tallies 'up' and 'down' counts from an external feed; the target
// replica count is simply up minus down, with no lower bound of its own.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/updowncalc"
)

func main() {
	flag.Parse()

	evaluator := &updowncalc.Evaluator{}
	code := hook.NewRunner().Run(evaluator.Evaluate)
	glog.Flush()
	os.Exit(code)
}
