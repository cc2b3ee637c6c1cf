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

// Package hook implements the Custom Pod Autoscaler user logic protocol;
// a hook is a short lived process that is piped a single JSON document
// through stdin and either writes a single JSON document to stdout and exits
// with status 0, or writes a diagnostic to stderr and exits with status 1.
package hook

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
)

const (
	// ScalerRunType marks an invocation triggered by the autoscaler's
	// periodic scaling loop
	ScalerRunType = "scaler"
	// APIRunType marks an invocation triggered by an ad-hoc request to the
	// autoscaler's REST API
	APIRunType = "api"
)

// Exit statuses reported back to the autoscaler, no other statuses are part
// of the protocol
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Handler transforms a complete input document into the document to write to
// the output stream
type Handler func(input []byte) ([]byte, error)

// Runner executes hook logic over a set of process streams
type Runner struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRunner creates a Runner bound to the standard process streams
func NewRunner() *Runner {
	return &Runner{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Run reads the entire input stream, hands the document to the handler, and
// writes the result to the output stream in a single write. On any failure
// nothing is written to the output stream, a single diagnostic line is
// written to the error stream and the failure exit status is returned.
func (r *Runner) Run(handle Handler) int {
	input, err := io.ReadAll(r.In)
	if err != nil {
		fmt.Fprintln(r.Err, Diagnostic(err))
		return ExitFailure
	}

	glog.V(3).Infof("Read %d byte input document, running hook logic", len(input))

	output, err := handle(input)
	if err != nil {
		fmt.Fprintln(r.Err, Diagnostic(err))
		return ExitFailure
	}

	_, err = r.Out.Write(output)
	if err != nil {
		fmt.Fprintln(r.Err, Diagnostic(err))
		return ExitFailure
	}

	glog.V(3).Infof("Hook logic successful, wrote %d byte result", len(output))

	return ExitSuccess
}
