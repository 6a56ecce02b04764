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

//go:generate mockgen -source=store_client.go -destination=mock/interfaces.go -package=mock

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"
)

// Requester is the transport the store client is built on, satisfied
// by HTTPClient.
type Requester interface {
	Get(ctx context.Context, endpoint string, params url.Values, opts ...RequestOption) (*Response, error)
	Post(ctx context.Context, endpoint string, form url.Values, body any, opts ...RequestOption) (*Response, error)
	Put(ctx context.Context, endpoint string, form url.Values, body any, opts ...RequestOption) (*Response, error)
	Delete(ctx context.Context, endpoint string, opts ...RequestOption) (*Response, error)
	SetAuthToken(token string)
	Close() error
}

// StoreClient maps catalog operations to HTTP calls. It never interprets
// a response, status and body checks are left to the caller.
type StoreClient struct {
	requester Requester
	endpoints *Endpoints
}

func NewStoreClient(requester Requester) *StoreClient {
	return &StoreClient{
		requester: requester,
		endpoints: NewEndpoints(),
	}
}

// NewStoreClientWithConfig creates a store client with its own HTTP client.
func NewStoreClientWithConfig(config *TestConfig) *StoreClient {
	return NewStoreClient(NewHTTPClientWithConfig(config))
}

type listParams struct {
	limit *int
	sort  *SortOrder
}

// ListOption adds an optional query parameter to a listing.
type ListOption func(*listParams)

// WithLimit caps the number of products returned.
func WithLimit(limit int) ListOption {
	return func(p *listParams) {
		p.limit = &limit
	}
}

// WithSort orders the products by id.
func WithSort(order SortOrder) ListOption {
	return func(p *listParams) {
		p.sort = &order
	}
}

// addQueryParam styles a single query parameter and merges it into values.
func addQueryParam(values url.Values, name string, value any) error {
	queryFrag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("styling query parameter %s: %w", name, err)
	}

	parsed, err := url.ParseQuery(queryFrag)
	if err != nil {
		return fmt.Errorf("parsing query parameter %s: %w", name, err)
	}

	for k, v := range parsed {
		for _, v2 := range v {
			values.Add(k, v2)
		}
	}

	return nil
}

// ListProducts lists the catalog. Parameters that were not supplied are
// not sent at all.
func (c *StoreClient) ListProducts(ctx context.Context, opts ...ListOption) (*Response, error) {
	var params listParams

	for _, opt := range opts {
		opt(&params)
	}

	query := url.Values{}

	if params.limit != nil {
		if err := addQueryParam(query, "limit", *params.limit); err != nil {
			return nil, err
		}
	}

	if params.sort != nil {
		if err := addQueryParam(query, "sort", string(*params.sort)); err != nil {
			return nil, err
		}
	}

	if len(query) == 0 {
		query = nil
	}

	return c.requester.Get(ctx, c.endpoints.Products(), query)
}

func (c *StoreClient) GetProduct(ctx context.Context, productID int) (*Response, error) {
	return c.requester.Get(ctx, c.endpoints.Product(productID), nil)
}

func (c *StoreClient) CreateProduct(ctx context.Context, product ProductPayload) (*Response, error) {
	return c.requester.Post(ctx, c.endpoints.Products(), nil, product)
}

// UpdateProduct sends only the fields set in update.
func (c *StoreClient) UpdateProduct(ctx context.Context, productID int, update ProductUpdate) (*Response, error) {
	return c.requester.Put(ctx, c.endpoints.Product(productID), nil, update)
}

func (c *StoreClient) DeleteProduct(ctx context.Context, productID int) (*Response, error) {
	return c.requester.Delete(ctx, c.endpoints.Product(productID))
}

func (c *StoreClient) ListCategories(ctx context.Context) (*Response, error) {
	return c.requester.Get(ctx, c.endpoints.Categories(), nil)
}

func (c *StoreClient) ListProductsInCategory(ctx context.Context, category string) (*Response, error) {
	return c.requester.Get(ctx, c.endpoints.ProductsInCategory(category), nil)
}

func (c *StoreClient) SetAuthToken(token string) {
	c.requester.SetAuthToken(token)
}

// Close releases the underlying transport.
func (c *StoreClient) Close() error {
	return c.requester.Close()
}
