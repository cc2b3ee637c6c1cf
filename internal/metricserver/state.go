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

// Package metricserver implements the demo application the pod metric hooks
// scale on, a single bounded metric that can be nudged up and down over HTTP
// to watch the autoscaler react.
package metricserver

import (
	"fmt"
	"sync"

	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
)

// Bounds of the demo metric
const (
	MinMetric = 0
	MaxMetric = 5
)

// State is the metric owned by the server process, only mutated through
// Increment and Decrement
type State struct {
	mu    sync.Mutex
	value int
	min   int
	max   int
}

// NewState creates a State at the minimum metric value
func NewState() *State {
	return &State{
		value: MinMetric,
		min:   MinMetric,
		max:   MaxMetric,
	}
}

// Snapshot returns the current metric document
func (s *State) Snapshot() metric.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Increment raises the metric by one and returns the post-mutation snapshot,
// rejecting the mutation if it would exceed the maximum
func (s *State) Increment() (metric.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value >= s.max {
		return metric.Value{}, fmt.Errorf("metric cannot be incremented beyond %d", s.max)
	}
	s.value++
	return s.snapshotLocked(), nil
}

// Decrement lowers the metric by one and returns the post-mutation snapshot,
// rejecting the mutation if it would drop below the minimum
func (s *State) Decrement() (metric.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value <= s.min {
		return metric.Value{}, fmt.Errorf("metric cannot be decremented below %d", s.min)
	}
	s.value--
	return s.snapshotLocked(), nil
}

func (s *State) snapshotLocked() metric.Value {
	return metric.Value{
		Value:     s.value,
		Available: s.max - s.value,
		Min:       s.min,
		Max:       s.max,
	}
}
