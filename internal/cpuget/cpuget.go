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

// Package cpuget gathers an average CPU utilization metric from the
// Kubernetes metrics server results the autoscaler pipes in alongside the
// resource description.
package cpuget

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// Utilization is the document this gatherer emits for evaluation
type Utilization struct {
	CurrentReplicas    int32   `json:"current_replicas"`
	AverageUtilization float64 `json:"average_utilization"`
}

// Gatherer averages the per-pod metric values reported by the metrics server
type Gatherer struct{}

// Gather sums the metric value of every reporting pod and divides by the
// current replica count. The division is by replica count rather than by the
// number of samples on purpose, replicas that have not reported yet still
// count towards the average.
func (g *Gatherer) Gather(input []byte) ([]byte, error) {
	var spec metric.KubernetesMetricsSpec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	if len(spec.KubernetesMetrics) == 0 {
		return nil, &hook.MissingFieldError{Field: "kubernetesMetrics"}
	}

	// Only a single metric spec is configured for this hook, so only the
	// first result is relevant
	gathered := spec.KubernetesMetrics[0]
	if gathered.Resource == nil {
		return nil, &hook.MissingFieldError{Field: "kubernetesMetrics[0].resource"}
	}

	if gathered.CurrentReplicas <= 0 {
		return nil, &hook.InvalidMetricValueError{
			Value: strconv.Itoa(int(gathered.CurrentReplicas)),
			Err:   errors.New("current replica count must be positive"),
		}
	}

	var total int64
	for _, podMetric := range gathered.Resource.PodMetricsInfo {
		total += podMetric.Value
	}

	utilization := Utilization{
		CurrentReplicas:    gathered.CurrentReplicas,
		AverageUtilization: float64(total) / float64(gathered.CurrentReplicas),
	}

	glog.V(2).Infof("Calculated average utilization %f across %d replicas", utilization.AverageUtilization,
		utilization.CurrentReplicas)

	output, err := json.Marshal(utilization)
	if err != nil {
		// Should not occur, panic
		panic(err)
	}

	return output, nil
}
