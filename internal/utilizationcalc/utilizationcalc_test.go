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

package utilizationcalc_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/evaluate"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/internal/utilizationcalc"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		description string
		expected    evaluate.Evaluation
		input       string
	}{
		{
			"Above target utilization, scale up one step",
			evaluate.Evaluation{TargetReplicas: 4},
			`{"metrics": [{"resource": "php-apache", "value": "{\"current_replicas\": 3, \"average_utilization\": 60}"}], "runType": "scaler"}`,
		},
		{
			"At target utilization, scale down one step",
			evaluate.Evaluation{TargetReplicas: 2},
			`{"metrics": [{"resource": "php-apache", "value": "{\"current_replicas\": 3, \"average_utilization\": 50}"}], "runType": "scaler"}`,
		},
		{
			"Below target utilization, scale down one step",
			evaluate.Evaluation{TargetReplicas: 2},
			`{"metrics": [{"resource": "php-apache", "value": "{\"current_replicas\": 3, \"average_utilization\": 12.5}"}], "runType": "api"}`,
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			evaluator := &utilizationcalc.Evaluator{}

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

func TestEvaluate_Failures(t *testing.T) {
	var tests = []struct {
		description string
		input       string
		check       func(t *testing.T, err error)
	}{
		{
			"More than one metric provided",
			`{"metrics": [{"resource": "a", "value": "{}"}, {"resource": "b", "value": "{}"}], "runType": "scaler"}`,
			func(t *testing.T, err error) {
				expected := "expected 1 metric, got 2"
				if err == nil || err.Error() != expected {
					t.Fatalf("expected error '%s', got: %v", expected, err)
				}
			},
		},
		{
			"Zero current replicas scaling down would go negative",
			`{"metrics": [{"resource": "php-apache", "value": "{\"current_replicas\": 0, \"average_utilization\": 10}"}], "runType": "scaler"}`,
			func(t *testing.T, err error) {
				if err == nil {
					t.Fatal("expected error for negative target replica count")
				}
			},
		},
		{
			"Malformed nested value",
			`{"metrics": [{"resource": "php-apache", "value": "{\"current_replicas\": "}], "runType": "scaler"}`,
			func(t *testing.T, err error) {
				var parseErr *hook.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected parse error, got: %v", err)
				}
			},
		},
		{
			"Malformed input document",
			`{"metrics"`,
			func(t *testing.T, err error) {
				var parseErr *hook.ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected parse error, got: %v", err)
				}
			},
		},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			evaluator := &utilizationcalc.Evaluator{}

			output, err := evaluator.Evaluate([]byte(test.input))
			if output != nil {
				t.Errorf("expected no output, got: %s", output)
			}
			test.check(t, err)
		})
	}
}
