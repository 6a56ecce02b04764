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
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schemas/product.json
var productSchema []byte

// SchemaViolationError means a response body does not conform to a schema.
type SchemaViolationError struct {
	Err error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("response body does not match schema: %v", e.Err)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Err
}

func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrValidation
}

// LoadSchema parses and checks a JSON schema document.
func LoadSchema(raw []byte) (*openapi3.Schema, error) {
	schema := &openapi3.Schema{}

	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	if err := schema.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return schema, nil
}

// LoadProductSchema returns the schema every product object must satisfy.
func LoadProductSchema() (*openapi3.Schema, error) {
	return LoadSchema(productSchema)
}

// ValidateJSON checks that body is a JSON document conforming to schema.
func ValidateJSON(schema *openapi3.Schema, body []byte) error {
	var value any

	if err := json.Unmarshal(body, &value); err != nil {
		return &SchemaViolationError{Err: fmt.Errorf("body is not valid JSON: %w", err)}
	}

	return validateValue(schema, value)
}

// ValidateEach checks that body is a JSON array whose every element conforms to schema.
func ValidateEach(schema *openapi3.Schema, body []byte) error {
	var values []any

	if err := json.Unmarshal(body, &values); err != nil {
		return &SchemaViolationError{Err: fmt.Errorf("body is not a JSON array: %w", err)}
	}

	for i, value := range values {
		if err := validateValue(schema, value); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

func validateValue(schema *openapi3.Schema, value any) error {
	if err := schema.VisitJSON(value); err != nil {
		return &SchemaViolationError{Err: err}
	}

	return nil
}
