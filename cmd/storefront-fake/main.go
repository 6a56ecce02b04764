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
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/storefront/pkg/constants"
	"github.com/unikorn-cloud/storefront/pkg/options"
	"github.com/unikorn-cloud/storefront/test/fakestore"
)

const shutdownTimeout = 5 * time.Second

func start() error {
	var logging options.LoggingOptions

	var (
		listen  string
		latency time.Duration
	)

	logging.AddFlags(pflag.CommandLine)
	pflag.StringVar(&listen, "listen", ":8080", "Address to serve the fake catalog on.")
	pflag.DurationVar(&latency, "latency", 0, "Artificial delay added to every response.")

	pflag.Parse()

	logger, err := logging.Logger()
	if err != nil {
		return err
	}

	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              listen,
		Handler:           fakestore.New(fakestore.WithLatency(latency)).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		logger.Info("listening", "address", listen)

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	if err := start(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
