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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/storefront/pkg/constants"
	"github.com/unikorn-cloud/storefront/pkg/options"
	"github.com/unikorn-cloud/storefront/test/api"
)

var errEmptyListing = errors.New("listing returned no products")

// smoke runs read only checks against a catalog.
type smoke struct {
	logger    logr.Logger
	client    *api.StoreClient
	validator *api.ResponseValidator
	schema    *openapi3.Schema
	limit     int
}

// check applies the full response contract, and the product schema
// when one is given.
func (s *smoke) check(name string, resp *api.Response, validate func(*openapi3.Schema, []byte) error) error {
	if err := s.validator.CheckFullResponse(resp, api.Expectation{Status: http.StatusOK}); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if validate != nil {
		if err := validate(s.schema, resp.Body); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	s.logger.Info("check passed", "check", name, "url", resp.URL, "elapsed", resp.Elapsed)

	return nil
}

func (s *smoke) run(ctx context.Context) error {
	resp, err := s.client.ListProducts(ctx, api.WithLimit(s.limit))
	if err != nil {
		return err
	}

	if err := s.check("list products", resp, api.ValidateEach); err != nil {
		return err
	}

	var products []api.Product
	if err := resp.DecodeJSON(&products); err != nil {
		return err
	}

	if len(products) == 0 {
		return errEmptyListing
	}

	resp, err = s.client.GetProduct(ctx, products[0].ID)
	if err != nil {
		return err
	}

	if err := s.check("get product", resp, api.ValidateJSON); err != nil {
		return err
	}

	resp, err = s.client.ListCategories(ctx)
	if err != nil {
		return err
	}

	return s.check("list categories", resp, nil)
}

func start() error {
	config, err := api.LoadTestConfig()
	if err != nil {
		return err
	}

	var logging options.LoggingOptions

	limit := 5

	flags := pflag.CommandLine

	logging.AddFlags(flags)
	flags.StringVar(&config.BaseURL, "base-url", config.BaseURL, "Catalog API base URL.")
	flags.StringVar(&config.AuthToken, "token", config.AuthToken, "Bearer token sent with every request.")
	flags.DurationVar(&config.RequestTimeout, "timeout", config.RequestTimeout, "Per request timeout.")
	flags.DurationVar(&config.MaxResponseTime, "max-response-time", config.MaxResponseTime, "Slowest acceptable response.")
	flags.BoolVar(&config.InsecureSkipVerify, "insecure-skip-verify", config.InsecureSkipVerify, "Skip TLS certificate verification.")
	flags.IntVar(&limit, "limit", limit, "Number of products to list.")

	pflag.Parse()

	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := logging.Logger()
	if err != nil {
		return err
	}

	logger.Info("smoke test starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision, "baseURL", config.BaseURL)

	schema, err := api.LoadProductSchema()
	if err != nil {
		return err
	}

	client := api.NewStoreClientWithConfig(config)

	defer func() {
		_ = client.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := &smoke{
		logger:    logger,
		client:    client,
		validator: api.NewResponseValidator(config),
		schema:    schema,
		limit:     limit,
	}

	if err := s.run(ctx); err != nil {
		logger.Error(err, "smoke test failed")
		return err
	}

	logger.Info("smoke test passed")

	return nil
}

func main() {
	if err := start(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
