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

// Package multipliercalc decides a target replica count by multiplying a
// single integer metric value, pairing with the label gatherer to scale to a
// fixed multiple of whatever the resource declares.
package multipliercalc

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/evaluate"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// ReplicaMultiplier is applied to the gathered metric value to produce the
// target replica count
const ReplicaMultiplier = 2

// Evaluator multiplies a single integer metric value
type Evaluator struct{}

// Evaluate parses the first gathered metric value as an integer and returns
// it multiplied by the replica multiplier; a value that is not an integer is
// an invalid metric
func (e *Evaluator) Evaluate(input []byte) ([]byte, error) {
	var spec evaluate.Spec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	if len(spec.Metrics) == 0 {
		return nil, &hook.MissingFieldError{Field: "metrics"}
	}

	value := strings.TrimSpace(spec.Metrics[0].Value)
	count, err := strconv.Atoi(value)
	if err != nil {
		return nil, &hook.InvalidMetricValueError{
			Value: value,
			Err:   err,
		}
	}

	targetReplicas := int32(count * ReplicaMultiplier)

	glog.V(2).Infof("Calculated target replica count %d from metric value %d", targetReplicas, count)

	output, err := json.Marshal(evaluate.Evaluation{
		TargetReplicas: targetReplicas,
	})
	if err != nil {
		// Should not occur, panic
		panic(err)
	}

	return output, nil
}
