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

// Package evaluate provides the documents piped between the Custom Pod
// Autoscaler and evaluation hooks; the autoscaler serializes a Spec onto the
// hook's stdin and expects an Evaluation on its stdout.
package evaluate

import (
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Spec is the aggregate document piped to an evaluation hook, the gathered
// metrics in the order the autoscaler collected them alongside the managed
// resource and the run type that triggered the evaluation
type Spec struct {
	Metrics  []*metric.ResourceMetric  `json:"metrics"`
	Resource unstructured.Unstructured `json:"resource"`
	RunType  string                    `json:"runType"`
}

// Evaluation represents a decision on how to scale a resource
type Evaluation struct {
	TargetReplicas int32 `json:"targetReplicas"`
}
