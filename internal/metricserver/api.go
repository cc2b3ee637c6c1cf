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

package metricserver

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/jthomperoo/custom-pod-autoscaler-hooks/metric"
)

// Error is an error response from the API, with the status code and an error
// message
type Error struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// API exposes the demo metric over HTTP, the metric endpoint the pod probe
// hook polls plus the two mutating endpoints used to drive the demo
type API struct {
	Router chi.Router
	State  *State
}

// Routes sets up routing for the API
func (api *API) Routes() {
	api.Router.Get("/metric", api.getMetric)
	api.Router.Post("/increment", api.increment)
	api.Router.Post("/decrement", api.decrement)
	api.Router.NotFound(api.notFound)
	api.Router.MethodNotAllowed(api.methodNotAllowed)
}

func (api *API) getMetric(w http.ResponseWriter, r *http.Request) {
	apiValue(w, api.State.Snapshot())
}

func (api *API) increment(w http.ResponseWriter, r *http.Request) {
	snapshot, err := api.State.Increment()
	if err != nil {
		apiError(w, &Error{
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}
	apiValue(w, snapshot)
}

func (api *API) decrement(w http.ResponseWriter, r *http.Request) {
	snapshot, err := api.State.Decrement()
	if err != nil {
		apiError(w, &Error{
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}
	apiValue(w, snapshot)
}

func (api *API) notFound(w http.ResponseWriter, r *http.Request) {
	apiError(w, &Error{
		Message: fmt.Sprintf("Resource '%s' not found", r.URL.Path),
		Code:    http.StatusNotFound,
	})
}

func (api *API) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apiError(w, &Error{
		Message: fmt.Sprintf("Method '%s' not allowed on resource '%s'", r.Method, r.URL.Path),
		Code:    http.StatusMethodNotAllowed,
	})
}

func apiValue(w http.ResponseWriter, value metric.Value) {
	// Convert into JSON
	response, err := json.Marshal(value)
	if err != nil {
		// Should not occur, panic
		log.Panic(err)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(response)
}

func apiError(w http.ResponseWriter, apiErr *Error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	// Convert into JSON
	response, err := json.Marshal(apiErr)
	if err != nil {
		// Should not occur, panic
		log.Panic(err)
	}
	w.WriteHeader(apiErr.Code)
	w.Write(response)
}
