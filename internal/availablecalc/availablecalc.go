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

// Package availablecalc decides a target replica count from the spare
// capacity the managed pods report. The decision uses a hysteresis band, a
// no-op zone between the scale up and scale down triggers that prevents the
// target oscillating every evaluation.
package availablecalc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/evaluate"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/scheme"
)

// Band thresholds, tunable without touching the decision logic itself
const (
	// ScaleDownAvailability is the total available capacity above which one
	// replica is removed
	ScaleDownAvailability = 5
	// ScaleUpAvailability is the total available capacity at or below which
	// one replica is added
	ScaleUpAvailability = 0
)

// Target applies the hysteresis band to a baseline replica count; outside the
// band the target moves a single step at a time
func Target(baseline int32, totalAvailable int) int32 {
	if totalAvailable > ScaleDownAvailability {
		return baseline - 1
	}
	if totalAvailable <= ScaleUpAvailability {
		return baseline + 1
	}
	return baseline
}

// Evaluator decides a target replica count from gathered availability metrics
type Evaluator struct{}

// Evaluate sums the available capacity across every gathered metric and nudges
// the baseline replica count by at most one step. The baseline is the replica
// count the managed resource reports; a resource that does not report one
// falls back to the number of gathered metrics, one per reporting pod.
func (e *Evaluator) Evaluate(input []byte) ([]byte, error) {
	var spec evaluate.Spec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	totalAvailable := 0
	for _, gathered := range spec.Metrics {
		var value metric.Value
		err := hook.UnmarshalValue(gathered.Value, &value)
		if err != nil {
			return nil, err
		}
		totalAvailable += value.Available
	}

	baseline, err := e.baseline(&spec)
	if err != nil {
		return nil, err
	}

	glog.V(2).Infof("Total available %d against baseline replica count %d", totalAvailable, baseline)

	targetReplicas := Target(baseline, totalAvailable)
	if targetReplicas < 0 {
		return nil, fmt.Errorf("calculated negative target replica count %d from baseline %d", targetReplicas,
			baseline)
	}

	output, err := json.Marshal(evaluate.Evaluation{
		TargetReplicas: targetReplicas,
	})
	if err != nil {
		// Should not occur, panic
		panic(err)
	}

	return output, nil
}

// baseline extracts the replica count the managed resource reports in its
// status, converting the untyped resource through the client-go scheme; kinds
// that are unknown or carry no replica status fall back to the gathered
// metric count
func (e *Evaluator) baseline(spec *evaluate.Spec) (int32, error) {
	gvk := spec.Resource.GroupVersionKind()

	obj, err := scheme.Scheme.New(gvk)
	if err != nil {
		glog.V(2).Infof("Resource kind '%s' not registered, falling back to metric count baseline: %v", gvk.Kind, err)
		return int32(len(spec.Metrics)), nil
	}

	err = runtime.DefaultUnstructuredConverter.FromUnstructured(spec.Resource.Object, obj)
	if err != nil {
		return 0, &hook.ParseError{Err: fmt.Errorf("malformed resource description: %w", err)}
	}

	switch resource := obj.(type) {
	case *appsv1.Deployment:
		return resource.Status.Replicas, nil
	case *appsv1.ReplicaSet:
		return resource.Status.Replicas, nil
	case *appsv1.StatefulSet:
		return resource.Status.Replicas, nil
	case *corev1.ReplicationController:
		return resource.Status.Replicas, nil
	default:
		glog.V(2).Infof("Resource kind '%s' reports no replica status, falling back to metric count baseline",
			gvk.Kind)
		return int32(len(spec.Metrics)), nil
	}
}
