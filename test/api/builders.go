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
	"time"

	"k8s.io/utils/ptr"
)

// ProductPayloadBuilder builds product creation payloads for testing.
type ProductPayloadBuilder struct {
	payload ProductPayload
}

// NewProductPayload creates a new product payload builder with defaults from the fixtures.
func NewProductPayload(fixtures *ProductFixtures) *ProductPayloadBuilder {
	return &ProductPayloadBuilder{
		payload: fixtures.SampleProduct,
	}
}

// WithTitle sets the product title.
func (b *ProductPayloadBuilder) WithTitle(title string) *ProductPayloadBuilder {
	b.payload.Title = title
	return b
}

// WithUniqueTitle appends a timestamp to the title so runs are distinguishable.
func (b *ProductPayloadBuilder) WithUniqueTitle(prefix string) *ProductPayloadBuilder {
	b.payload.Title = fmt.Sprintf("%s-%s", prefix, time.Now().Format("20060102-150405"))
	return b
}

func (b *ProductPayloadBuilder) WithPrice(price float64) *ProductPayloadBuilder {
	b.payload.Price = price
	return b
}

func (b *ProductPayloadBuilder) WithDescription(description string) *ProductPayloadBuilder {
	b.payload.Description = description
	return b
}

func (b *ProductPayloadBuilder) WithCategory(category string) *ProductPayloadBuilder {
	b.payload.Category = category
	return b
}

func (b *ProductPayloadBuilder) WithImage(image string) *ProductPayloadBuilder {
	b.payload.Image = image
	return b
}

// Build returns the completed product payload.
func (b *ProductPayloadBuilder) Build() ProductPayload {
	return b.payload
}

// ProductUpdateBuilder builds partial updates, only fields that are
// explicitly set end up in the request.
type ProductUpdateBuilder struct {
	update ProductUpdate
}

// NewProductUpdate creates an empty update.
func NewProductUpdate() *ProductUpdateBuilder {
	return &ProductUpdateBuilder{}
}

func (b *ProductUpdateBuilder) WithTitle(title string) *ProductUpdateBuilder {
	b.update.Title = ptr.To(title)
	return b
}

func (b *ProductUpdateBuilder) WithPrice(price float64) *ProductUpdateBuilder {
	b.update.Price = ptr.To(price)
	return b
}

func (b *ProductUpdateBuilder) WithDescription(description string) *ProductUpdateBuilder {
	b.update.Description = ptr.To(description)
	return b
}

func (b *ProductUpdateBuilder) WithCategory(category string) *ProductUpdateBuilder {
	b.update.Category = ptr.To(category)
	return b
}

func (b *ProductUpdateBuilder) WithImage(image string) *ProductUpdateBuilder {
	b.update.Image = ptr.To(image)
	return b
}

// Build returns the completed update.
func (b *ProductUpdateBuilder) Build() ProductUpdate {
	return b.update
}
