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
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL         = "https://fakestoreapi.com"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultMaxResponseTime = 3000 * time.Millisecond
)

// TestConfig is built once per test process and handed to the client
// constructors, nothing in this package reads the environment on its own.
type TestConfig struct {
	BaseURL         string        `validate:"required,url"`
	AuthToken       string        `validate:"omitempty,printascii"`
	RequestTimeout  time.Duration `validate:"gt=0"`
	MaxResponseTime time.Duration `validate:"gt=0"`
	// InsecureSkipVerify turns off TLS certificate verification for
	// targets using self-signed certificates.
	InsecureSkipVerify bool
	UseLiveAPI         bool
	LogRequests        bool
	LogResponses       bool
}

// DefaultTestConfig returns the built in defaults without looking at the environment.
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:         DefaultBaseURL,
		RequestTimeout:  DefaultRequestTimeout,
		MaxResponseTime: DefaultMaxResponseTime,
	}
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if the resulting configuration is invalid.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:            getStringWithDefault("BASE_URL", DefaultBaseURL),
		AuthToken:          os.Getenv("API_AUTH_TOKEN"),
		RequestTimeout:     getDurationWithDefault("REQUEST_TIMEOUT", time.Second, DefaultRequestTimeout),
		MaxResponseTime:    getDurationWithDefault("MAX_RESPONSE_TIME_MS", time.Millisecond, DefaultMaxResponseTime),
		InsecureSkipVerify: getBoolWithDefault("INSECURE_SKIP_VERIFY", false),
		UseLiveAPI:         getBoolWithDefault("USE_LIVE_API", false),
		LogRequests:        getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:       getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks field constraints, callers that tweak a loaded config
// (e.g. from command line flags) should call it again.
func (c *TestConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid test configuration: %w", err)
	}

	return nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
// Bare integers are interpreted in the given unit, anything else must parse
// as a Go duration.
func getDurationWithDefault(key string, unit, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(n) * unit
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
		"test/.env",          // From the repository root (commands)
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables are never overwritten.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
