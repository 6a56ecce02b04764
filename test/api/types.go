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

// Rating is the aggregated customer rating of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog entry as returned by the API.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// ProductPayload is the body of a create request, all fields are required.
type ProductPayload struct {
	Title       string  `json:"title"       yaml:"title"`
	Price       float64 `json:"price"       yaml:"price"`
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category"    yaml:"category"`
	Image       string  `json:"image"       yaml:"image"`
}

// ProductUpdate is the body of a partial update. Nil fields are left out
// of the request entirely.
type ProductUpdate struct {
	Title       *string  `json:"title,omitempty"       yaml:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"       yaml:"price,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Category    *string  `json:"category,omitempty"    yaml:"category,omitempty"`
	Image       *string  `json:"image,omitempty"       yaml:"image,omitempty"`
}

// SortOrder controls the ordering of product listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)
