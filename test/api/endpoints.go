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
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Product catalog endpoints.
func (e *Endpoints) Products() string {
	return "/products"
}

func (e *Endpoints) Product(productID int) string {
	return "/products/" + strconv.Itoa(productID)
}

func (e *Endpoints) Categories() string {
	return "/products/categories"
}

func (e *Endpoints) ProductsInCategory(category string) string {
	return fmt.Sprintf("/products/category/%s", url.PathEscape(category))
}
