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

// Package utilizationcalc decides a target replica count by comparing an
// average utilization metric against a target utilization, moving a single
// replica at a time towards it.
package utilizationcalc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/evaluate"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/cpuget"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// TargetAverageUtilization is the utilization the evaluator drives the
// resource towards
const TargetAverageUtilization = 50

// Evaluator scales towards the target average utilization
type Evaluator struct{}

// Evaluate expects exactly one gathered metric carrying a utilization
// document; above the target utilization one replica is added, at or below it
// one replica is removed
func (e *Evaluator) Evaluate(input []byte) ([]byte, error) {
	var spec evaluate.Spec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	if len(spec.Metrics) != 1 {
		return nil, fmt.Errorf("expected 1 metric, got %d", len(spec.Metrics))
	}

	var utilization cpuget.Utilization
	err = hook.UnmarshalValue(spec.Metrics[0].Value, &utilization)
	if err != nil {
		return nil, err
	}

	targetReplicas := utilization.CurrentReplicas
	if utilization.AverageUtilization > TargetAverageUtilization {
		targetReplicas++
	} else {
		targetReplicas--
	}

	if targetReplicas < 0 {
		return nil, fmt.Errorf("calculated negative target replica count %d from current replica count %d",
			targetReplicas, utilization.CurrentReplicas)
	}

	glog.V(2).Infof("Calculated target replica count %d from average utilization %f", targetReplicas,
		utilization.AverageUtilization)

	output, err := json.Marshal(evaluate.Evaluation{
		TargetReplicas: targetReplicas,
	})
	if err != nil {
		// Should not occur, panic
		panic(err)
	}

	return output, nil
}
