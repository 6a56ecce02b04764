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

package fakestore

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ContentType is what every endpoint responds with.
const ContentType = "application/json; charset=utf-8"

// RecordedRequest is a request as seen by the fake.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Store is an in-memory fake of the storefront catalog API. Like the
// public API it acknowledges writes without persisting them.
type Store struct {
	lock        sync.Mutex
	products    []Product
	categories  []string
	nextID      int
	latency     time.Duration
	contentType string
	requests    []RecordedRequest
}

// Option configures a Store.
type Option func(*Store)

// WithProducts replaces the seed catalog.
func WithProducts(products []Product) Option {
	return func(s *Store) {
		s.products = products
	}
}

// WithLatency delays every response.
func WithLatency(latency time.Duration) Option {
	return func(s *Store) {
		s.latency = latency
	}
}

// WithContentType overrides the response content type.
func WithContentType(contentType string) Option {
	return func(s *Store) {
		s.contentType = contentType
	}
}

// New returns a store seeded with DefaultCatalog.
func New(opts ...Option) *Store {
	s := &Store{
		products:    DefaultCatalog(),
		categories:  Categories(),
		contentType: ContentType,
	}

	for _, opt := range opts {
		opt(s)
	}

	for _, p := range s.products {
		s.nextID = max(s.nextID, p.ID)
	}

	s.nextID++

	return s
}

// Requests returns a copy of every request received so far.
func (s *Store) Requests() []RecordedRequest {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.requests)
}

// LastRequest returns the most recent request, ok is false if there was none.
func (s *Store) LastRequest() (RecordedRequest, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}

	return s.requests[len(s.requests)-1], true
}

// Handler returns the HTTP API.
func (s *Store) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.listProducts)
		r.Post("/", s.createProduct)
		r.Get("/categories", s.listCategories)
		r.Get("/category/{category}", s.listProductsInCategory)
		r.Get("/{productID}", s.getProduct)
		r.Put("/{productID}", s.updateProduct)
		r.Delete("/{productID}", s.deleteProduct)
	})

	return r
}

func (s *Store) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "unable to read request body")
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))

		s.lock.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.lock.Unlock()

		if s.latency > 0 {
			time.Sleep(s.latency)
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Store) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", s.contentType)
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func (s *Store) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"status":  "error",
		"message": message,
	})
}

// lookup returns a copy of the product with the given id.
func (s *Store) lookup(id int) (Product, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	index := slices.IndexFunc(s.products, func(p Product) bool {
		return p.ID == id
	})

	if index < 0 {
		return Product{}, false
	}

	return s.products[index], true
}

func (s *Store) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "product id should be provided as a number")
		return 0, false
	}

	return id, true
}

func (s *Store) listProducts(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	products := slices.Clone(s.products)
	s.lock.Unlock()

	query := r.URL.Query()

	if query.Get("sort") == "desc" {
		slices.Reverse(products)
	}

	if value := query.Get("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			s.writeError(w, http.StatusBadRequest, "limit should be a non-negative number")
			return
		}

		if limit < len(products) {
			products = products[:limit]
		}
	}

	s.writeJSON(w, http.StatusOK, products)
}

func (s *Store) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := s.productID(w, r)
	if !ok {
		return
	}

	product, ok := s.lookup(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	s.writeJSON(w, http.StatusOK, product)
}

func (s *Store) createProduct(w http.ResponseWriter, r *http.Request) {
	var product Product

	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body should be a product document")
		return
	}

	s.lock.Lock()
	product.ID = s.nextID
	s.nextID++
	s.lock.Unlock()

	s.writeJSON(w, http.StatusCreated, product)
}

func (s *Store) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := s.productID(w, r)
	if !ok {
		return
	}

	product, ok := s.lookup(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	// Decoding over the stored copy leaves absent fields untouched.
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		s.writeError(w, http.StatusBadRequest, "request body should be a product document")
		return
	}

	product.ID = id

	s.writeJSON(w, http.StatusOK, product)
}

func (s *Store) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := s.productID(w, r)
	if !ok {
		return
	}

	product, ok := s.lookup(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "product not found")
		return
	}

	s.writeJSON(w, http.StatusOK, product)
}

func (s *Store) listCategories(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.categories)
}

func (s *Store) listProductsInCategory(w http.ResponseWriter, r *http.Request) {
	category, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed category")
		return
	}

	s.lock.Lock()
	products := make([]Product, 0, len(s.products))

	for _, p := range s.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	s.lock.Unlock()

	s.writeJSON(w, http.StatusOK, products)
}
