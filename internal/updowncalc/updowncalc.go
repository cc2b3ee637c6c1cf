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

// Package updowncalc decides a target replica count directly from a single
// gathered metric carrying 'up' and 'down' tallies, for example votes counted
// from an external feed.
package updowncalc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/evaluate"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// Ratio is the nested document expected inside the single gathered metric
type Ratio struct {
	Up   int `json:"up"`
	Down int `json:"down"`
}

// Evaluator sets the target replica count to up minus down
type Evaluator struct{}

// Evaluate expects exactly one gathered metric and returns up - down as the
// target. The result is deliberately not clamped; whether a zero or negative
// target is honoured is the autoscaler's policy decision, its min/max replica
// configuration applies after this hook runs.
func (e *Evaluator) Evaluate(input []byte) ([]byte, error) {
	var spec evaluate.Spec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	if len(spec.Metrics) != 1 {
		return nil, fmt.Errorf("expected 1 metric, got %d", len(spec.Metrics))
	}

	var ratio Ratio
	err = hook.UnmarshalValue(spec.Metrics[0].Value, &ratio)
	if err != nil {
		return nil, err
	}

	targetReplicas := int32(ratio.Up - ratio.Down)

	glog.V(2).Infof("Calculated target replica count %d from %d up and %d down", targetReplicas, ratio.Up,
		ratio.Down)

	output, err := json.Marshal(evaluate.Evaluation{
		TargetReplicas: targetReplicas,
	})
	if err != nil {
		// Should not occur, panic
		panic(err)
	}

	return output, nil
}
