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

// Package api provides integration test utilities for the storefront catalog API.
//
// # Layers
//
// The harness is split in three layers that scenarios compose:
//
// 1. **Transport** (HTTPClient): issues GET/POST/PUT/DELETE against a base
// URL with shared default headers, an optional bearer token, a fixed
// timeout and W3C trace context on every request. It returns a fully
// buffered Response and never judges the status code.
//
// 2. **Store client** (StoreClient): one method per catalog operation. It
// shapes paths, query parameters and JSON bodies and hands back the raw
// Response. Optional arguments that were not supplied are never sent.
//
// 3. **Validation** (CheckStatus, CheckResponseTime, CheckContentType,
// ResponseValidator.CheckFullResponse, ValidateJSON): independent checks
// returning typed errors that carry expected and actual values. Gomega
// matchers wrap them for use in suites.
//
// # Lifecycle
//
// An HTTPClient owns its connection pool. Close it exactly once when the
// owning scope ends, typically with DeferCleanup; calls after Close fail
// with ErrClientClosed.
package api
