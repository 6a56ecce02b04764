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

//nolint:revive // dot imports are standard for Ginkgo/Gomega test code
package api_test

import (
	"errors"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/storefront/test/api"
)

func newResponse(status int, contentType string, elapsed time.Duration) *api.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	return &api.Response{
		Method:     http.MethodGet,
		URL:        "http://example.test/products/1",
		StatusCode: status,
		Header:     header,
		Body:       []byte(`{"id":1}`),
		Elapsed:    elapsed,
	}
}

var _ = Describe("Response validation", func() {
	Context("When checking the status code", func() {
		It("should pass on an exact match", func() {
			Expect(api.CheckStatus(newResponse(http.StatusOK, "", 0), http.StatusOK)).To(Succeed())
		})

		It("should report expected, actual and the body on mismatch", func() {
			err := api.CheckStatus(newResponse(http.StatusInternalServerError, "", 0), http.StatusOK)

			var mismatch *api.StatusMismatchError
			Expect(errors.As(err, &mismatch)).To(BeTrue())
			Expect(mismatch.Expected).To(Equal(http.StatusOK))
			Expect(mismatch.Actual).To(Equal(http.StatusInternalServerError))
			Expect(mismatch.Body).To(Equal(`{"id":1}`))
			Expect(err).To(MatchError(api.ErrValidation))
			Expect(err.Error()).To(ContainSubstring("expected status 200, but got 500"))
		})
	})

	Context("When checking the response time", func() {
		DescribeTable("should fail once the threshold is reached",
			func(elapsed time.Duration, pass bool) {
				err := api.CheckResponseTime(newResponse(http.StatusOK, "", elapsed), 100*time.Millisecond)
				if pass {
					Expect(err).NotTo(HaveOccurred())
					return
				}

				var exceeded *api.LatencyExceededError
				Expect(errors.As(err, &exceeded)).To(BeTrue())
				Expect(exceeded.Elapsed).To(Equal(elapsed))
				Expect(exceeded.Max).To(Equal(100 * time.Millisecond))
				Expect(err).To(MatchError(api.ErrValidation))
			},
			Entry("well under", 10*time.Millisecond, true),
			Entry("just under", 99*time.Millisecond, true),
			Entry("at the threshold", 100*time.Millisecond, false),
			Entry("just over", 101*time.Millisecond, false),
		)

		It("should include both values in the message", func() {
			err := api.CheckResponseTime(newResponse(http.StatusOK, "", 150*time.Millisecond), 100*time.Millisecond)
			Expect(err).To(MatchError("response time 150.000ms exceeded maximum 100ms"))
		})
	})

	Context("When checking the content type", func() {
		DescribeTable("should match on a substring",
			func(header string, pass bool) {
				err := api.CheckContentType(newResponse(http.StatusOK, header, 0), "application/json")
				if pass {
					Expect(err).NotTo(HaveOccurred())
					return
				}

				var mismatch *api.ContentTypeMismatchError
				Expect(errors.As(err, &mismatch)).To(BeTrue())
				Expect(mismatch.Expected).To(Equal("application/json"))
				Expect(mismatch.Actual).To(Equal(header))
			},
			Entry("exact", "application/json", true),
			Entry("with charset", "application/json; charset=utf-8", true),
			Entry("html", "text/html", false),
			Entry("missing", "", false),
		)
	})

	Context("When checking the full contract", func() {
		It("should report only the status mismatch when everything is wrong", func() {
			resp := newResponse(http.StatusInternalServerError, "text/plain", 2*time.Second)

			err := api.CheckFullResponse(resp, api.Expectation{
				Status:          http.StatusOK,
				MaxResponseTime: time.Millisecond,
			})

			var mismatch *api.StatusMismatchError
			Expect(errors.As(err, &mismatch)).To(BeTrue())

			var exceeded *api.LatencyExceededError
			Expect(errors.As(err, &exceeded)).To(BeFalse())
		})

		It("should check latency before content type", func() {
			resp := newResponse(http.StatusOK, "text/plain", 2*time.Second)

			err := api.CheckFullResponse(resp, api.Expectation{MaxResponseTime: time.Second})

			var exceeded *api.LatencyExceededError
			Expect(errors.As(err, &exceeded)).To(BeTrue())
		})

		It("should report the content type last", func() {
			resp := newResponse(http.StatusCreated, "text/html", time.Millisecond)

			err := api.CheckFullResponse(resp, api.Expectation{Status: http.StatusCreated})

			var mismatch *api.ContentTypeMismatchError
			Expect(errors.As(err, &mismatch)).To(BeTrue())
		})

		It("should default to 200 and JSON", func() {
			Expect(api.CheckFullResponse(newResponse(http.StatusOK, "application/json", time.Millisecond), api.Expectation{})).To(Succeed())
		})

		It("should default to the package threshold", func() {
			Expect(api.CheckFullResponse(newResponse(http.StatusOK, "application/json", api.DefaultMaxResponseTime-time.Millisecond), api.Expectation{})).To(Succeed())
			Expect(api.CheckFullResponse(newResponse(http.StatusOK, "application/json", api.DefaultMaxResponseTime), api.Expectation{})).To(MatchError(api.ErrValidation))
		})

		It("should default to the configured threshold", func() {
			config := api.DefaultTestConfig()
			config.MaxResponseTime = 5 * time.Millisecond

			validator := api.NewResponseValidator(config)
			Expect(validator.MaxResponseTime()).To(Equal(5 * time.Millisecond))

			err := validator.CheckFullResponse(newResponse(http.StatusOK, "application/json", 10*time.Millisecond), api.Expectation{})

			var exceeded *api.LatencyExceededError
			Expect(errors.As(err, &exceeded)).To(BeTrue())
			Expect(exceeded.Max).To(Equal(5 * time.Millisecond))
		})

		It("should use the configured threshold when checking latency alone", func() {
			config := api.DefaultTestConfig()
			config.MaxResponseTime = 50 * time.Millisecond

			validator := api.NewResponseValidator(config)

			Expect(validator.CheckResponseTime(newResponse(http.StatusOK, "application/json", 49*time.Millisecond), 0)).To(Succeed())

			err := validator.CheckResponseTime(newResponse(http.StatusOK, "application/json", 50*time.Millisecond), 0)

			var exceeded *api.LatencyExceededError
			Expect(errors.As(err, &exceeded)).To(BeTrue())
			Expect(exceeded.Max).To(Equal(50 * time.Millisecond))

			Expect(validator.CheckResponseTime(newResponse(http.StatusOK, "application/json", 50*time.Millisecond), time.Second)).To(Succeed())
		})

		It("should treat a zero threshold as the package default", func() {
			Expect(api.CheckResponseTime(newResponse(http.StatusOK, "application/json", time.Second), 0)).To(Succeed())
			Expect(api.CheckResponseTime(newResponse(http.StatusOK, "application/json", api.DefaultMaxResponseTime), 0)).To(MatchError(api.ErrValidation))
		})

		It("should let an explicit threshold override the configured one", func() {
			validator := api.NewResponseValidator(api.DefaultTestConfig())

			err := validator.CheckFullResponse(newResponse(http.StatusOK, "application/json", 10*time.Millisecond), api.Expectation{MaxResponseTime: time.Millisecond})
			Expect(err).To(MatchError(api.ErrValidation))
		})

		It("should not modify the response", func() {
			resp := newResponse(http.StatusInternalServerError, "text/plain", time.Second)
			snapshot := *resp
			snapshot.Header = resp.Header.Clone()

			_ = api.CheckFullResponse(resp, api.Expectation{})
			_ = api.CheckFullResponse(resp, api.Expectation{})

			Expect(*resp).To(Equal(snapshot))
		})
	})

	Context("When using the gomega matchers", func() {
		It("should match the status", func() {
			resp := newResponse(http.StatusNotFound, "application/json", 0)

			Expect(resp).To(api.HaveStatus(http.StatusNotFound))
			Expect(resp).NotTo(api.HaveStatus(http.StatusOK))

			failure := InterceptGomegaFailure(func() {
				Expect(resp).To(api.HaveStatus(http.StatusOK))
			})
			Expect(failure).To(MatchError(ContainSubstring("Expected status 200, but got 404")))
		})

		It("should surface the contract diagnostic", func() {
			validator := api.NewResponseValidator(api.DefaultTestConfig())
			resp := newResponse(http.StatusOK, "text/html", time.Millisecond)

			Expect(resp).NotTo(api.SatisfyResponseContract(validator, api.Expectation{}))

			failure := InterceptGomegaFailure(func() {
				Expect(resp).To(api.SatisfyResponseContract(validator, api.Expectation{}))
			})
			Expect(failure).To(MatchError(ContainSubstring("expected content type 'application/json', but got 'text/html'")))
		})

		It("should reject values that are not responses", func() {
			validator := api.NewResponseValidator(api.DefaultTestConfig())

			success, err := api.SatisfyResponseContract(validator, api.Expectation{}).Match("not a response")
			Expect(err).To(HaveOccurred())
			Expect(success).To(BeFalse())
		})
	})
})
