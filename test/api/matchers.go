/*
Copyright 2024-2025 the Unikorn Authors.

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

package api

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"
)

// HaveStatus succeeds when a *Response has the given status code.
func HaveStatus(code int) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(resp *Response) (bool, error) {
		return resp.StatusCode == code, nil
	}).WithTemplate("Expected status {{.Data}}, but got {{.Actual.StatusCode}}. Response: {{.Actual.Text}}", code)
}

// errorMatcher adapts a check function to gomega, reporting the check's
// own diagnostic on failure.
type errorMatcher struct {
	name  string
	check func(resp *Response) error
	err   error
}

func (m *errorMatcher) Match(actual any) (bool, error) {
	resp, ok := actual.(*Response)
	if !ok {
		return false, fmt.Errorf("%s expects a *api.Response, got %T", m.name, actual)
	}

	m.err = m.check(resp)

	return m.err == nil, nil
}

func (m *errorMatcher) FailureMessage(_ any) string {
	return m.err.Error()
}

func (m *errorMatcher) NegatedFailureMessage(_ any) string {
	return fmt.Sprintf("expected response not to pass %s", m.name)
}

// SatisfyResponseContract runs the full status, latency and content type check.
func SatisfyResponseContract(validator *ResponseValidator, expect Expectation) types.GomegaMatcher {
	return &errorMatcher{
		name: "SatisfyResponseContract",
		check: func(resp *Response) error {
			return validator.CheckFullResponse(resp, expect)
		},
	}
}

// MatchSchema succeeds when the response body conforms to schema.
func MatchSchema(schema *openapi3.Schema) types.GomegaMatcher {
	return &errorMatcher{
		name: "MatchSchema",
		check: func(resp *Response) error {
			return ValidateJSON(schema, resp.Body)
		},
	}
}

// MatchSchemaForEach succeeds when the response body is an array whose
// elements all conform to schema.
func MatchSchemaForEach(schema *openapi3.Schema) types.GomegaMatcher {
	return &errorMatcher{
		name: "MatchSchemaForEach",
		check: func(resp *Response) error {
			return ValidateEach(schema, resp.Body)
		},
	}
}
