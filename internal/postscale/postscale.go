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

// Package postscale records the scale information the autoscaler pipes to its
// post-scale hook, overwriting a fixed file with each invocation so the last
// scaling decision can be inspected from outside the autoscaler.
package postscale

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/hook"
)

// DefaultDataPath is where scale information is recorded when no override is
// configured
const DefaultDataPath = "/post_scale_data.json"

const dataFileMode = 0644

// Sink records piped scale information to a file
type Sink struct {
	Path string
}

// NewSink creates a Sink recording to the default path
func NewSink() *Sink {
	return &Sink{
		Path: DefaultDataPath,
	}
}

// Record validates the piped document and writes its compact JSON
// serialization over the sink file; the hook produces no result document
func (s *Sink) Record(input []byte) ([]byte, error) {
	var scaleInfo interface{}
	err := json.Unmarshal(input, &scaleInfo)
	if err != nil {
		return nil, &hook.ParseError{Err: err}
	}

	data, err := json.Marshal(scaleInfo)
	if err != nil {
		// Should not occur, panic
		panic(err)
	}

	err = os.WriteFile(s.Path, data, dataFileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to record scale information: %w", err)
	}

	glog.V(2).Infof("Recorded %d bytes of scale information to '%s'", len(data), s.Path)

	return nil, nil
}
