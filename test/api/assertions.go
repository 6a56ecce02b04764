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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultContentType is the media type every catalog endpoint returns.
const DefaultContentType = "application/json"

var (
	// ErrValidation matches every response contract failure with errors.Is.
	ErrValidation = errors.New("response validation failed")
)

// StatusMismatchError means the response status was not the expected one.
type StatusMismatchError struct {
	Expected int
	Actual   int
	Body     string
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("expected status %d, but got %d. Response: %s", e.Expected, e.Actual, e.Body)
}

func (e *StatusMismatchError) Is(target error) bool {
	return target == ErrValidation
}

// LatencyExceededError means the response took at least the allowed time.
type LatencyExceededError struct {
	Elapsed time.Duration
	Max     time.Duration
}

func (e *LatencyExceededError) Error() string {
	return fmt.Sprintf("response time %.3fms exceeded maximum %dms", milliseconds(e.Elapsed), e.Max.Milliseconds())
}

func (e *LatencyExceededError) Is(target error) bool {
	return target == ErrValidation
}

// ContentTypeMismatchError means the Content-Type header lacks the expected media type.
type ContentTypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *ContentTypeMismatchError) Error() string {
	return fmt.Sprintf("expected content type '%s', but got '%s'", e.Expected, e.Actual)
}

func (e *ContentTypeMismatchError) Is(target error) bool {
	return target == ErrValidation
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// CheckStatus fails unless the response has the expected status code.
func CheckStatus(resp *Response, expected int) error {
	if resp.StatusCode != expected {
		return &StatusMismatchError{
			Expected: expected,
			Actual:   resp.StatusCode,
			Body:     resp.Text(),
		}
	}

	return nil
}

// CheckResponseTime fails when the response took max or longer. A zero
// maxTime means DefaultMaxResponseTime.
func CheckResponseTime(resp *Response, maxTime time.Duration) error {
	if maxTime == 0 {
		maxTime = DefaultMaxResponseTime
	}

	if milliseconds(resp.Elapsed) >= milliseconds(maxTime) {
		return &LatencyExceededError{
			Elapsed: resp.Elapsed,
			Max:     maxTime,
		}
	}

	return nil
}

// CheckContentType fails unless the Content-Type header contains expected,
// so parameters such as charset are tolerated.
func CheckContentType(resp *Response, expected string) error {
	contentType := resp.Header.Get("Content-Type")

	if !strings.Contains(contentType, expected) {
		return &ContentTypeMismatchError{
			Expected: expected,
			Actual:   contentType,
		}
	}

	return nil
}

// Expectation describes the contract a response must meet. Zero values
// select the defaults: 200, the validator threshold and application/json.
type Expectation struct {
	Status          int
	MaxResponseTime time.Duration
	ContentType     string
}

// ResponseValidator applies the full response contract with a configured
// default latency threshold.
type ResponseValidator struct {
	maxResponseTime time.Duration
}

// NewResponseValidator uses the configured maximum response time as the default.
func NewResponseValidator(config *TestConfig) *ResponseValidator {
	return &ResponseValidator{
		maxResponseTime: config.MaxResponseTime,
	}
}

// MaxResponseTime returns the default latency threshold.
func (v *ResponseValidator) MaxResponseTime() time.Duration {
	return v.maxResponseTime
}

// CheckResponseTime is CheckResponseTime with the configured threshold
// used when maxTime is zero.
func (v *ResponseValidator) CheckResponseTime(resp *Response, maxTime time.Duration) error {
	if maxTime == 0 {
		maxTime = v.maxResponseTime
	}

	return CheckResponseTime(resp, maxTime)
}

// CheckFullResponse checks status, then response time, then content type
// and returns the first failure.
func (v *ResponseValidator) CheckFullResponse(resp *Response, expect Expectation) error {
	if expect.Status == 0 {
		expect.Status = http.StatusOK
	}

	if expect.ContentType == "" {
		expect.ContentType = DefaultContentType
	}

	if err := CheckStatus(resp, expect.Status); err != nil {
		return err
	}

	if err := v.CheckResponseTime(resp, expect.MaxResponseTime); err != nil {
		return err
	}

	return CheckContentType(resp, expect.ContentType)
}

// CheckFullResponse validates resp with DefaultMaxResponseTime as the
// latency threshold when expect does not set one.
func CheckFullResponse(resp *Response, expect Expectation) error {
	v := &ResponseValidator{
		maxResponseTime: DefaultMaxResponseTime,
	}

	return v.CheckFullResponse(resp, expect)
}
