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

// Package metric provides the documents piped between the Custom Pod
// Autoscaler and metric gathering hooks; the autoscaler serializes one of the
// spec variants below onto the hook's stdin, and later aggregates each hook's
// raw output into a ResourceMetric fed to the evaluator.
package metric

import (
	resourcemetrics "github.com/jthomperoo/k8shorizmetrics/v3/metrics/resource"
	autoscalingv2 "k8s.io/api/autoscaling/v2"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// ResourceMetric is a gathered metric tagged with the resource that produced
// it; the value is an opaque string from the autoscaler's point of view,
// evaluators decide how to interpret it
type ResourceMetric struct {
	Resource string `json:"resource,omitempty"`
	Value    string `json:"value,omitempty"`
}

// PodSpec is the document piped to a metric hook running in per-pod mode,
// carrying the full description of a single pod being managed
type PodSpec struct {
	Pod     corev1.Pod `json:"resource"`
	RunType string     `json:"runType"`
}

// ResourceSpec is the document piped to a metric hook running in per-resource
// mode, carrying the managed resource untyped since the autoscaler can manage
// any scalable kind
type ResourceSpec struct {
	Resource unstructured.Unstructured `json:"resource"`
	RunType  string                    `json:"runType"`
}

// KubernetesMetricsSpec is the document piped to a metric hook when the
// autoscaler has been configured to query the Kubernetes metrics server on
// the hook's behalf
type KubernetesMetricsSpec struct {
	KubernetesMetrics []*KubernetesMetric `json:"kubernetesMetrics"`
	RunType           string              `json:"runType"`
}

// KubernetesMetric is a single metrics server result as serialized by the
// autoscaler, the replica count at gathering time alongside the gathered
// per-pod values
type KubernetesMetric struct {
	CurrentReplicas int32                    `json:"current_replicas"`
	Spec            autoscalingv2.MetricSpec `json:"spec"`
	Resource        *resourcemetrics.Metric  `json:"resource,omitempty"`
}

// Value is the snapshot document exposed by the demo metric server and
// carried string-encoded inside a ResourceMetric value
type Value struct {
	Value     int `json:"value"`
	Available int `json:"available"`
	Min       int `json:"min"`
	Max       int `json:"max"`
}
