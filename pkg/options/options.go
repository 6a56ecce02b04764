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

package options

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingOptions control the command line logger.
type LoggingOptions struct {
	// Level is the minimum level that is emitted.
	Level string
	// Development switches to human readable console output.
	Development bool
}

// AddFlags registers logging flags with the flag set.
func (o *LoggingOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Level, "log-level", "info", "Minimum log level, one of debug, info, warn or error.")
	f.BoolVar(&o.Development, "log-development", false, "Emit human readable logs rather than JSON.")
}

// Logger returns a logr logger backed by zap.
func (o *LoggingOptions) Logger() (logr.Logger, error) {
	level, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("parsing log level: %w", err)
	}

	config := zap.NewProductionConfig()
	if o.Development {
		config = zap.NewDevelopmentConfig()
	}

	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building logger: %w", err)
	}

	return zapr.NewLogger(logger), nil
}
