//go:build unit
// +build unit

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

package availablecalc_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/evaluate"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/availablecalc"
)

// availabilityMetric builds a gathered metric entry whose nested value
// reports the provided available capacity
func availabilityMetric(resource string, available int) string {
	value := fmt.Sprintf(`{\"value\": %d, \"available\": %d, \"min\": 0, \"max\": 5}`, 5-available, available)
	return fmt.Sprintf(`{"resource": "%s", "value": "%s"}`, resource, value)
}

func deploymentResource(replicas int) string {
	return fmt.Sprintf(`{"kind": "Deployment", "apiVersion": "apps/v1", "metadata": {"name": "test-managed"}, "status": {"replicas": %d}}`, replicas)
}

func TestTarget(t *testing.T) {
	var tests = []struct {
		description    string
		expected       int32
		baseline       int32
		totalAvailable int
	}{
		{
			"Above the band, scale down one step",
			2,
			3,
			6,
		},
		{
			"At the scale down threshold, unchanged",
			3,
			3,
			5,
		},
		{
			"Inside the band, unchanged",
			3,
			3,
			1,
		},
		{
			"At the scale up threshold, scale up one step",
			4,
			3,
			0,
		},
		{
			"Below the scale up threshold, scale up one step",
			4,
			3,
			-2,
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			target := availablecalc.Target(test.baseline, test.totalAvailable)
			if !cmp.Equal(test.expected, target) {
				t.Errorf("target mismatch (-want +got):\n%s", cmp.Diff(test.expected, target))
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		description string
		expected    evaluate.Evaluation
		input       string
	}{
		{
			"Capacity surplus, baseline from deployment status, scale down",
			evaluate.Evaluation{TargetReplicas: 2},
			fmt.Sprintf(`{"metrics": [%s, %s], "resource": %s, "runType": "scaler"}`,
				availabilityMetric("pod-1", 4), availabilityMetric("pod-2", 2), deploymentResource(3)),
		},
		{
			"Total available at the scale down threshold, unchanged",
			evaluate.Evaluation{TargetReplicas: 3},
			fmt.Sprintf(`{"metrics": [%s], "resource": %s, "runType": "scaler"}`,
				availabilityMetric("pod-1", 5), deploymentResource(3)),
		},
		{
			"Capacity exhausted, scale up",
			evaluate.Evaluation{TargetReplicas: 4},
			fmt.Sprintf(`{"metrics": [%s, %s], "resource": %s, "runType": "api"}`,
				availabilityMetric("pod-1", 0), availabilityMetric("pod-2", 0), deploymentResource(3)),
		},
		{
			"Inside the band, unchanged",
			evaluate.Evaluation{TargetReplicas: 3},
			fmt.Sprintf(`{"metrics": [%s], "resource": %s, "runType": "scaler"}`,
				availabilityMetric("pod-1", 1), deploymentResource(3)),
		},
		{
			"No resource provided, baseline falls back to metric count",
			evaluate.Evaluation{TargetReplicas: 3},
			fmt.Sprintf(`{"metrics": [%s, %s], "runType": "scaler"}`,
				availabilityMetric("pod-1", 0), availabilityMetric("pod-2", 0)),
		},
		{
			"Unknown resource kind, baseline falls back to metric count",
			evaluate.Evaluation{TargetReplicas: 0},
			fmt.Sprintf(`{"metrics": [%s], "resource": {"kind": "Unknown", "apiVersion": "unknown/v1"}, "runType": "scaler"}`,
				availabilityMetric("pod-1", 6)),
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			evaluator := &availablecalc.Evaluator{}

			output, err := evaluator.Evaluate([]byte(test.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var evaluation evaluate.Evaluation
			err = json.Unmarshal(output, &evaluation)
			if err != nil {
				t.Fatalf("failed to parse evaluation: %v", err)
			}
			if !cmp.Equal(test.expected, evaluation) {
				t.Errorf("evaluation mismatch (-want +got):\n%s", cmp.Diff(test.expected, evaluation))
			}
		})
	}
}

func TestEvaluate_MalformedNestedValue(t *testing.T) {
	evaluator := &availablecalc.Evaluator{}

	input := fmt.Sprintf(`{"metrics": [{"resource": "pod-1", "value": "{\"available\": "}], "resource": %s, "runType": "scaler"}`,
		deploymentResource(3))

	output, err := evaluator.Evaluate([]byte(input))
	if output != nil {
		t.Errorf("expected no output, got: %s", output)
	}
	var parseErr *hook.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected parse error, got: %v", err)
	}
}

func TestEvaluate_MalformedInput(t *testing.T) {
	evaluator := &availablecalc.Evaluator{}

	output, err := evaluator.Evaluate([]byte(`{"metrics": [`))
	if output != nil {
		t.Errorf("expected no output, got: %s", output)
	}
	var parseErr *hook.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected parse error, got: %v", err)
	}
}

func TestEvaluate_NegativeTarget(t *testing.T) {
	evaluator := &availablecalc.Evaluator{}

	input := fmt.Sprintf(`{"metrics": [%s], "resource": %s, "runType": "scaler"}`,
		availabilityMetric("pod-1", 6), deploymentResource(0))

	output, err := evaluator.Evaluate([]byte(input))
	if output != nil {
		t.Errorf("expected no output, got: %s", output)
	}
	if err == nil {
		t.Fatal("expected error for negative target replica count")
	}
}
