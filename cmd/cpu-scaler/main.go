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

// cpu-scaler provides the user logic for an autoscaler driven by the
// Kubernetes metrics server. The metric hook averages the CPU utilization the
// autoscaler gathered across the managed pods, the evaluate hook moves the
// replica count one step towards a target average utilization; the
// autoscaler selects which runs through the -mode flag in its configured
// shell commands.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/cpuget"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/utilizationcalc"
)

const (
	metricMode   = "metric"
	evaluateMode = "evaluate"
)

func main() {
	mode := flag.String("mode", metricMode, "hook mode, either 'metric' or 'evaluate'")
	flag.Parse()

	code := run(*mode)
	glog.Flush()
	os.Exit(code)
}

func run(mode string) int {
	runner := hook.NewRunner()
	switch mode {
	case metricMode:
		gatherer := &cpuget.Gatherer{}
		return runner.Run(gatherer.Gather)
	case evaluateMode:
		evaluator := &utilizationcalc.Evaluator{}
		return runner.Run(evaluator.Evaluate)
	default:
		fmt.Fprintln(os.Stderr, hook.Diagnostic(fmt.Errorf("unknown hook mode '%s'", mode)))
		return hook.ExitFailure
	}
}
