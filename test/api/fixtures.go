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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/spjmurray/go-util/pkg/set"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/gomega"
)

//go:embed fixtures/products.yaml
var productFixtures []byte

// ProductFixtures is the shared test data for product scenarios.
type ProductFixtures struct {
	SampleProduct  ProductPayload `yaml:"sample_product"`
	UpdatedProduct ProductUpdate  `yaml:"updated_product"`
	Categories     []string       `yaml:"categories"`
}

// LoadProductFixtures decodes the embedded fixture file.
func LoadProductFixtures() (*ProductFixtures, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(productFixtures))
	decoder.KnownFields(true)

	fixtures := &ProductFixtures{}

	if err := decoder.Decode(fixtures); err != nil {
		return nil, fmt.Errorf("decoding product fixtures: %w", err)
	}

	return fixtures, nil
}

// MustLoadProductFixtures is LoadProductFixtures for use in test setup.
func MustLoadProductFixtures() *ProductFixtures {
	fixtures, err := LoadProductFixtures()
	if err != nil {
		panic(err)
	}

	return fixtures
}

// DecodeProduct decodes a single product from a response body.
func DecodeProduct(resp *Response) Product {
	var product Product
	Expect(resp.DecodeJSON(&product)).To(Succeed())

	return product
}

// DecodeProducts decodes a product list from a response body.
func DecodeProducts(resp *Response) []Product {
	var products []Product
	Expect(resp.DecodeJSON(&products)).To(Succeed())

	return products
}

// VerifyProductMatches verifies every submitted field was returned unchanged.
func VerifyProductMatches(product Product, payload ProductPayload) {
	Expect(product.Title).To(Equal(payload.Title), "Title should match")
	Expect(product.Price).To(Equal(payload.Price), "Price should match")
	Expect(product.Description).To(Equal(payload.Description), "Description should match")
	Expect(product.Category).To(Equal(payload.Category), "Category should match")
	Expect(product.Image).To(Equal(payload.Image), "Image should match")
}

// VerifyProductUpdated verifies the fields present in the update were applied.
func VerifyProductUpdated(product Product, update ProductUpdate) {
	if update.Title != nil {
		Expect(product.Title).To(Equal(*update.Title), "Title should match")
	}

	if update.Price != nil {
		Expect(product.Price).To(Equal(*update.Price), "Price should match")
	}

	if update.Description != nil {
		Expect(product.Description).To(Equal(*update.Description), "Description should match")
	}

	if update.Category != nil {
		Expect(product.Category).To(Equal(*update.Category), "Category should match")
	}

	if update.Image != nil {
		Expect(product.Image).To(Equal(*update.Image), "Image should match")
	}
}

// VerifyProductsInCategory verifies a non-empty listing only holds products from category.
func VerifyProductsInCategory(products []Product, category string) {
	Expect(products).NotTo(BeEmpty(), "Should have at least one product in '%s' category", category)

	for _, product := range products {
		Expect(product.Category).To(Equal(category), "Product %d should be in '%s' category", product.ID, category)
	}
}

// VerifyCategoriesPresent verifies every expected category is listed.
func VerifyCategoriesPresent(categories, expected []string) {
	missing := set.New[string](expected...).Difference(set.New[string](categories...))

	var names []string

	for name := range missing.All() {
		names = append(names, name)
	}

	Expect(names).To(BeEmpty(), "Expected categories to be present in %v", categories)
}
