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

// Package labelget gathers a metric by copying a label value from the managed
// resource's metadata, letting the resource itself declare how many pods it
// should be scaled to.
package labelget

import (
	"bytes"
	"fmt"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
	"k8s.io/apimachinery/pkg/util/yaml"
)

// DefaultLabel is the resource label read when no override is configured
const DefaultLabel = "numPods"

// Gatherer copies the configured label value from the managed resource
type Gatherer struct {
	Label string
}

// NewGatherer creates a Gatherer reading the default label
func NewGatherer() *Gatherer {
	return &Gatherer{
		Label: DefaultLabel,
	}
}

// Gather parses the piped resource description and returns the configured
// label's value verbatim; a resource without the label is a failure, the
// autoscaler has nothing to evaluate without it
func (g *Gatherer) Gather(input []byte) ([]byte, error) {
	var spec metric.ResourceSpec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	value, exists := spec.Resource.GetLabels()[g.Label]
	if !exists {
		return nil, &hook.MissingFieldError{
			Field: fmt.Sprintf("metadata.labels.%s", g.Label),
		}
	}

	glog.V(2).Infof("Gathered label '%s' value '%s' from resource '%s'", g.Label, value, spec.Resource.GetName())

	return []byte(value), nil
}
