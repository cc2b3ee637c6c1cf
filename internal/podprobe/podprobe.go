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

// Package podprobe gathers a metric by polling the metric endpoint exposed by
// the pod being managed, forwarding whatever the endpoint reports without
// modification.
package podprobe

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
	"k8s.io/apimachinery/pkg/util/yaml"
)

const (
	// MetricPort is the well known port every managed pod exposes its metric
	// endpoint on
	MetricPort = 5000
	// MetricPath is the path of the metric endpoint on each managed pod
	MetricPath = "/metric"
)

// Gatherer polls a managed pod's metric endpoint over HTTP. The request is
// made with no retry and no timeout of its own, the autoscaler's hook timeout
// bounds the call externally.
type Gatherer struct {
	Client *http.Client
	Port   int
}

// NewGatherer creates a Gatherer probing the well known metric port with the
// default Go HTTP client
func NewGatherer() *Gatherer {
	return &Gatherer{
		Client: http.DefaultClient,
		Port:   MetricPort,
	}
}

// Gather parses the piped pod description, makes a single GET request to the
// pod's metric endpoint and returns the response body verbatim; the body is
// not validated here, interpreting it is the evaluator's responsibility
func (g *Gatherer) Gather(input []byte) ([]byte, error) {
	var spec metric.PodSpec
	err := yaml.NewYAMLOrJSONDecoder(bytes.NewReader(input), 10).Decode(&spec)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	ip := spec.Pod.Status.PodIP
	if ip == "" {
		return nil, &hook.MissingFieldError{Field: "status.podIP"}
	}

	url := fmt.Sprintf("http://%s:%d%s", ip, g.Port, MetricPath)
	glog.V(2).Infof("Gathering metrics for pod '%s' from '%s'", spec.Pod.Name, url)

	resp, err := g.Client.Get(url)
	if err != nil {
		return nil, &hook.TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read metric endpoint response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &hook.TransportError{
			Err: fmt.Errorf("metric endpoint returned non-2xx status code %d: %s", resp.StatusCode, body),
		}
	}

	glog.V(2).Infof("Gathered metrics for pod '%s': %s", spec.Pod.Name, body)

	return body, nil
}
