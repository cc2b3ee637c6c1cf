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
	"encoding/json"
	"errors"
)

// UnmarshalValue parses a string encoded metric value into the provided
// document. Metric values are opaque strings from the autoscaler's
// perspective, they are only given structure once an evaluator interprets
// them, so nested content is validated here; a value of the wrong type
// reports an InvalidMetricValueError, malformed JSON reports a ParseError.
func UnmarshalValue(value string, v interface{}) error {
	err := json.Unmarshal([]byte(value), v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &InvalidMetricValueError{
			Value: value,
			Err:   err,
		}
	}
	return &ParseError{
		Err: err,
	}
}
