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

package hook

import (
	"errors"
	"fmt"
)

// ParseError occurs when an input document, or a nested JSON encoded metric
// value, cannot be parsed
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error occurred: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingFieldError occurs when a field the hook requires is absent from the
// input document
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing field error occurred: no '%s' provided", e.Field)
}

// InvalidMetricValueError occurs when a metric value is present but cannot be
// interpreted, for example a non integer value piped to an evaluator that
// expects one
type InvalidMetricValueError struct {
	Value string
	Err   error
}

func (e *InvalidMetricValueError) Error() string {
	return fmt.Sprintf("Invalid metric value: '%s': %v", e.Value, e.Err)
}

func (e *InvalidMetricValueError) Unwrap() error {
	return e.Err
}

// TransportError occurs when an outbound HTTP call made by a hook fails at
// the transport or HTTP level (connection refused, timeout, non-2xx status)
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("HTTP error occurred: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Diagnostic renders an error as the single line reported on stderr, known
// failure classes keep their class specific prefix, anything else is
// reported as a generic failure
func Diagnostic(err error) string {
	var parseErr *ParseError
	var missingErr *MissingFieldError
	var invalidErr *InvalidMetricValueError
	var transportErr *TransportError
	switch {
	case errors.As(err, &parseErr),
		errors.As(err, &missingErr),
		errors.As(err, &invalidErr),
		errors.As(err, &transportErr):
		return err.Error()
	default:
		return fmt.Sprintf("Other error occurred: %v", err)
	}
}
